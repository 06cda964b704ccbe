package models

// Lesson belongs to exactly one course and inherits its ownership from the
// course's instructor. Content pointers are all optional: an externally hosted
// document, a video link, and/or an uploaded file reference.
type Lesson struct {
	ID          int64   `json:"id" db:"id"`
	CourseID    int64   `json:"courseId" db:"course_id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	DocumentURL *string `json:"documentUrl,omitempty" db:"document_url"`
	VideoURL    *string `json:"videoUrl,omitempty" db:"video_url"`
	FileURL     *string `json:"fileUrl,omitempty" db:"file_url"`
	OrderIndex  int     `json:"orderIndex" db:"order_index"`
}
