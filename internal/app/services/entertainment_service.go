package services

import (
	"github.com/webslearn/webslearn/internal/app/models/dto"
)

// EntertainmentService serves the static entertainment feed.
type EntertainmentService interface {
	List() []dto.EntertainmentItem
}

type entertainmentServiceImpl struct{}

// NewEntertainmentService creates a new EntertainmentService
func NewEntertainmentService() EntertainmentService {
	return &entertainmentServiceImpl{}
}

// List returns the mock entertainment content.
func (s *entertainmentServiceImpl) List() []dto.EntertainmentItem {
	return []dto.EntertainmentItem{
		{
			ID:          1,
			Type:        "video",
			Title:       "Big Buck Bunny",
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Description: "A fun animated short film",
		},
		{
			ID:          2,
			Type:        "video",
			Title:       "Elephants Dream",
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Description: "Another great animated short",
		},
		{
			ID:      3,
			Type:    "news",
			Title:   "Tech Education Trends 2025",
			Content: "Online learning continues to grow with AI integration and personalized learning paths.",
			Date:    "2025-01-15",
		},
		{
			ID:      4,
			Type:    "news",
			Title:   "Remote Learning Best Practices",
			Content: "New studies show that interactive content improves student engagement by 40%.",
			Date:    "2025-01-10",
		},
	}
}
