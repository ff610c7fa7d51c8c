package model

import "time"

type MediaObject struct {
	Key         string    `bson:"_id" json:"name"`
	Folder      string    `bson:"folder" json:"folder"`
	ContentType string    `bson:"content_type" json:"type"`
	Size        int64     `bson:"size" json:"size"`
	PublicURL   string    `bson:"public_url" json:"url"`
	UploadTime  time.Time `bson:"upload_time" json:"-"`
}
