package events

import "time"

// StorageObject is the subset of the object-store notification payload the
// handlers need (finalize and delete events share the shape).
type StorageObject struct {
	Kind           string    `json:"kind"`
	ID             string    `json:"id"`
	Bucket         string    `json:"bucket"`
	Name           string    `json:"name"`
	ContentType    string    `json:"contentType"`
	Metageneration string    `json:"metageneration"`
	Size           string    `json:"size"`
	TimeCreated    time.Time `json:"timeCreated"`
	Updated        time.Time `json:"updated"`
	MediaLink      string    `json:"mediaLink"`
}
