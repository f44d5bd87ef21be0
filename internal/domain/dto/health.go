package dto

import "time"

type Health struct {
	ApiStatus string    `json:"ApiStatus"`
	DbStatus  string    `json:"DbStatus"`
	Timestamp time.Time `json:"Timestamp"`
}
