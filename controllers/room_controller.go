package controllers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-api/models"
	"hotel-api/repository"
	"hotel-api/services"
	"hotel-api/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// RoomInput carries the writable room fields. Price arrives string-encoded
// and is validated as a number.
type RoomInput struct {
	RoomNumber string `form:"room_number" json:"room_number"`
	Status     string `form:"status" json:"status"`
	Price      string `form:"price" json:"price"`
}

// validateRoomInput builds a field-level error map. excludeID lets an update
// keep its own room number.
func (c *RoomController) validateRoomInput(in *RoomInput, excludeID uint) (map[string]string, float64) {
	fieldErrs := map[string]string{}

	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	if in.RoomNumber == "" {
		fieldErrs["room_number"] = "The room_number field is required."
	} else if taken, err := c.RoomSvc.NumberTaken(in.RoomNumber, excludeID); err != nil {
		log.Printf("room_number uniqueness check failed: %v", err)
		fieldErrs["room_number"] = "Could not verify room_number uniqueness."
	} else if taken {
		fieldErrs["room_number"] = "The room_number has already been taken."
	}

	in.Status = strings.TrimSpace(in.Status)
	switch in.Status {
	case "":
		fieldErrs["status"] = "The status field is required."
	case models.RoomStatusAvailable, models.RoomStatusOccupied:
	default:
		fieldErrs["status"] = "The selected status is invalid."
	}

	var price float64
	in.Price = strings.TrimSpace(in.Price)
	if in.Price == "" {
		fieldErrs["price"] = "The price field is required."
	} else if p, err := strconv.ParseFloat(in.Price, 64); err != nil {
		fieldErrs["price"] = "The price field must be a number."
	} else {
		price = p
	}

	return fieldErrs, price
}

// roomImages pulls the uploaded files out of a multipart request; JSON
// requests simply have none.
func roomImages(ctx *gin.Context) []*multipart.FileHeader {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	files := form.File["images[]"]
	if len(files) == 0 {
		files = form.File["images"]
	}
	return files
}

func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GetRooms handles GET /api/rooms.
func (c *RoomController) GetRooms(ctx *gin.Context) {
	rooms, err := c.RoomSvc.GetAll()
	if err != nil {
		utils.JSONErrors(ctx, http.StatusInternalServerError, "Failed fetching rooms", err.Error())
		return
	}
	utils.JSONData(ctx, http.StatusOK, "ok", "Successfully fetched rooms", rooms)
}

// CreateRoom handles POST /api/rooms, multipart when images are attached.
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var input RoomInput
	if err := ctx.ShouldBind(&input); err != nil {
		utils.JSONErrors(ctx, http.StatusUnprocessableEntity, "Failed creating a new room", err.Error())
		return
	}

	fieldErrs, price := c.validateRoomInput(&input, 0)

	files := roomImages(ctx)
	for _, fh := range files {
		if err := services.ValidateImage(fh); err != nil {
			fieldErrs["images"] = err.Error()
			break
		}
	}

	if len(fieldErrs) > 0 {
		utils.JSONErrors(ctx, http.StatusUnprocessableEntity, "Failed creating a new room", fieldErrs)
		return
	}

	room := models.Room{RoomNumber: input.RoomNumber, Status: input.Status, Price: price}
	if err := c.RoomSvc.Create(&room, files); err != nil {
		if errors.Is(err, services.ErrRoomNumberTaken) {
			utils.JSONErrors(ctx, http.StatusUnprocessableEntity, "Failed creating a new room",
				map[string]string{"room_number": "The room_number has already been taken."})
			return
		}
		log.Printf("❌ create room failed: %v", err)
		utils.JSONErrors(ctx, http.StatusInternalServerError, "Failed creating a new room", err.Error())
		return
	}

	utils.JSONData(ctx, http.StatusCreated, "success", "Successfully created a new room", room)
}

// GetRoom handles GET /api/rooms/:id.
func (c *RoomController) GetRoom(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Room data not found.")
		return
	}

	room, err := c.RoomSvc.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Room data not found.")
		return
	}
	if err != nil {
		utils.JSONErrors(ctx, http.StatusInternalServerError, "Failed fetching a room data", err.Error())
		return
	}

	utils.JSONData(ctx, http.StatusOK, "ok", "Successfully fetched a room data", room)
}

// UpdateRoom handles PUT/PATCH /api/rooms/:id. It responds 201 on success,
// mirroring the create path.
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Room data not found.")
		return
	}

	var input RoomInput
	if err := ctx.ShouldBind(&input); err != nil {
		utils.JSONErrors(ctx, http.StatusUnprocessableEntity, "Failed updating a room", err.Error())
		return
	}

	fieldErrs, price := c.validateRoomInput(&input, id)
	if len(fieldErrs) > 0 {
		utils.JSONErrors(ctx, http.StatusUnprocessableEntity, "Failed updating a room", fieldErrs)
		return
	}

	room, err := c.RoomSvc.Update(id, map[string]interface{}{
		"room_number": input.RoomNumber,
		"status":      input.Status,
		"price":       price,
	})
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Room data not found.")
		return
	}
	if errors.Is(err, services.ErrRoomNumberTaken) {
		utils.JSONErrors(ctx, http.StatusUnprocessableEntity, "Failed updating a room",
			map[string]string{"room_number": "The room_number has already been taken."})
		return
	}
	if err != nil {
		log.Printf("❌ update room %d failed: %v", id, err)
		utils.JSONErrors(ctx, http.StatusInternalServerError, "Failed updating a room", err.Error())
		return
	}

	utils.JSONData(ctx, http.StatusCreated, "success", "Successfully updated a room", room)
}

// DeleteRoom handles DELETE /api/rooms/:id. The response carries the
// deleted room's last-known data.
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Room data not found.")
		return
	}

	room, err := c.RoomSvc.Delete(id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSONMessage(ctx, http.StatusNotFound, "errors", "Room data not found.")
		return
	}
	if err != nil {
		log.Printf("❌ delete room %d failed: %v", id, err)
		utils.JSONErrors(ctx, http.StatusInternalServerError, "Failed deleting a room", err.Error())
		return
	}

	utils.JSONData(ctx, http.StatusOK, "ok", "Successfully deleted a room data", room)
}
