package service

import (
	"fmt"
	"hash/fnv"

	"clinic-management-backend/internal/domain/entity"
)

// RoomAssigner picks the room number stamped on a new appointment.
// Pluggable so deployments with real room inventories can swap it out.
type RoomAssigner interface {
	Assign(doctor *entity.DoctorProfile) string
}

type defaultRoomAssigner struct{}

func NewRoomAssigner() RoomAssigner {
	return &defaultRoomAssigner{}
}

// Assign prefers the doctor's own office. Without one it derives a stable
// room from the department name via FNV-1a, which does not depend on any
// runtime's hash seed.
func (a *defaultRoomAssigner) Assign(doctor *entity.DoctorProfile) string {
	if doctor.OfficeNumber != "" {
		return doctor.OfficeNumber
	}
	if doctor.Department == "" {
		return "101"
	}

	h := fnv.New32a()
	h.Write([]byte(doctor.Department))
	return fmt.Sprintf("%d", 100+h.Sum32()%100)
}
