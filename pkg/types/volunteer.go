package types

import "time"

type VolunteerTask struct {
	ID                   int                `json:"id"`
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	Location             string             `json:"location"`
	Date                 string             `json:"date"`
	RequiredVolunteers   int                `json:"requiredVolunteers"`
	RegisteredVolunteers []TaskRegistration `json:"registeredVolunteers"`
	CreatedAt            time.Time          `json:"createdAt"`
}

type TaskRegistration struct {
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type Volunteer struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Skills       string    `json:"skills"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type CreateTaskInput struct {
	Title              string `form:"title"`
	Description        string `form:"description"`
	Location           string `form:"location"`
	Date               string `form:"date"`
	RequiredVolunteers int    `form:"required_volunteers"`
}

type CreateVolunteerInput struct {
	Name   string `form:"name"`
	Email  string `form:"email"`
	Phone  string `form:"phone"`
	Skills string `form:"skills"`
}
