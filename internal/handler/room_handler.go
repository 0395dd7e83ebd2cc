package handler

import (
	"time"

	"datavault360/internal/models"
	"datavault360/internal/service"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required,max=20"`
	RoomType   string `json:"room_type" binding:"omitempty,oneof=GENERAL ICU PRIVATE SEMI"`
	Speciality string `json:"speciality" binding:"max=100"`
}

type AdmitRequest struct {
	PatientID uint `json:"patient_id" binding:"required"`
}

type DischargeRequest struct {
	DischargeTime time.Time `json:"discharge_time" binding:"required"`
}

// GetAllRooms retrieves every room
func (h *RoomHandler) GetAllRooms(c *gin.Context) {
	rooms, err := h.roomService.GetAllRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, rooms)
}

// GetRoom retrieves a specific room by ID
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id", "room")
	if !ok {
		return
	}

	room, err := h.roomService.GetRoomByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, room)
}

// CreateRoom creates a new room (admin only)
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if !bind(c, &req) {
		return
	}

	room := &models.Room{
		RoomNumber: req.RoomNumber,
		RoomType:   req.RoomType,
		Speciality: req.Speciality,
	}
	if err := h.roomService.CreateRoom(c.Request.Context(), caller(c), room); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, room)
}

// AdmitPatient places a patient in an empty room (admin only)
func (h *RoomHandler) AdmitPatient(c *gin.Context) {
	id, ok := parseID(c, "id", "room")
	if !ok {
		return
	}
	var req AdmitRequest
	if !bind(c, &req) {
		return
	}

	room, err := h.roomService.AdmitPatient(c.Request.Context(), caller(c), id, req.PatientID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, room)
}

// ScheduleDischarge sets when an occupied room is vacated (admin only)
func (h *RoomHandler) ScheduleDischarge(c *gin.Context) {
	id, ok := parseID(c, "id", "room")
	if !ok {
		return
	}
	var req DischargeRequest
	if !bind(c, &req) {
		return
	}

	room, err := h.roomService.ScheduleDischarge(c.Request.Context(), caller(c), id, req.DischargeTime)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, room)
}

// DeleteRoom deletes a room (admin only)
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id", "room")
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), caller(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Room deleted successfully")
}
