package model

import "time"

type NewsItem struct {
	ID        int32
	Title     string
	Content   string
	ImageURL  string
	Published time.Time
}
