package dto

// CreateLessonRequest represents a request to add a lesson by URL
type CreateLessonRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DocumentURL *string `json:"document_url"`
	VideoURL    *string `json:"video_url"`
}

// UploadLessonForm represents the multipart form fields accompanying a lesson
// file upload. The file itself travels in the "file" part.
type UploadLessonForm struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description"`
	VideoURL    *string `form:"video_url"`
}

// UpdateLessonRequest represents a lesson update. The file pointer and order
// index are never altered through this request.
type UpdateLessonRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DocumentURL *string `json:"document_url"`
	VideoURL    *string `json:"video_url"`
}

// ReorderLessonsRequest carries lesson identifiers in their new display order.
type ReorderLessonsRequest struct {
	Lessons []int64 `json:"lessons" binding:"required"`
}

// CreateLessonResponse carries the identifier of a newly created lesson and,
// for uploads, the retrieval path of the stored file.
type CreateLessonResponse struct {
	ID      int64   `json:"id"`
	FileURL *string `json:"file_url,omitempty"`
	Message string  `json:"message"`
}
