package dto

import (
	"hostel/models"
)

// GuestRequest là body cho tạo mới và cập nhật guest.
// total_stays và last_visit do hệ thống quản lý nên không nằm ở đây.
type GuestRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Country    string `json:"country" binding:"required"`
	DocumentID string `json:"document_id" binding:"required"`
}

// Apply ghi đè toàn bộ trường có thể sửa của guest
func (r GuestRequest) Apply(g *models.Guest) {
	g.FirstName = r.FirstName
	g.LastName = r.LastName
	g.Email = r.Email
	g.Phone = r.Phone
	g.Country = r.Country
	g.DocumentID = r.DocumentID
}

type GuestResponse struct {
	ID         uint    `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Country    string  `json:"country"`
	DocumentID string  `json:"document_id"`
	TotalStays int     `json:"total_stays"`
	LastVisit  *string `json:"last_visit"`
}

func NewGuestResponse(g models.Guest) GuestResponse {
	return GuestResponse{
		ID:         g.ID,
		FirstName:  g.FirstName,
		LastName:   g.LastName,
		Email:      g.Email,
		Phone:      g.Phone,
		Country:    g.Country,
		DocumentID: g.DocumentID,
		TotalStays: g.TotalStays,
		LastVisit:  FormatDatePtr(g.LastVisit),
	}
}

func NewGuestList(guests []models.Guest) []GuestResponse {
	res := make([]GuestResponse, 0, len(guests))
	for _, g := range guests {
		res = append(res, NewGuestResponse(g))
	}
	return res
}
