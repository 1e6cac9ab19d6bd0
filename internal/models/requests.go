package models

type UploadResponse struct {
	ID           string `json:"id"`
	OriginalName string `json:"original_name"`
	Kind         string `json:"kind"`
	ObjectKey    string `json:"object_key"`
}

type VerifyRequest struct {
	ResumeDocumentID     string `json:"resume_document_id" validate:"required,uuid"`
	CredentialDocumentID string `json:"credential_document_id" validate:"required,uuid"`
}

type VerifyResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string              `json:"id"`
	Status       string              `json:"status"`
	Result       *VerificationReport `json:"result,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
}

type FaceLoginRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Image     string `json:"image" validate:"required,base64"`
}

type FaceLoginResponse struct {
	Token      string  `json:"token"`
	StudentID  string  `json:"student_id"`
	Similarity float64 `json:"similarity"`
}

type QuestionRequest struct {
	Company string `json:"company" validate:"required"`
	Role    string `json:"role" validate:"required"`
}

type QuestionResponse struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

type BuildResumeRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
}

type BuildResumeResponse struct {
	Resume string `json:"resume"`
}
