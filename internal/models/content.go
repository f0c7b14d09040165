package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status — статус модерации материала. Закрытый набор значений.
type Status int

const (
	StatusPending Status = iota
	StatusApproved
	StatusRejected
)

var statusNames = [...]string{
	StatusPending:  "pending",
	StatusApproved: "approved",
	StatusRejected: "rejected",
}

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

func (s Status) Valid() bool {
	return s >= StatusPending && s <= StatusRejected
}

// ParseStatus разбирает строковое представление статуса (как в БД и API).
func ParseStatus(raw string) (Status, error) {
	for i, name := range statusNames {
		if name == raw {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", raw)
}

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type ContentType string

const (
	TypeNote      ContentType = "note"
	TypeVideo     ContentType = "video"
	TypePYQ       ContentType = "pyq"
	TypeImportant ContentType = "important"
	TypeSyllabus  ContentType = "syllabus"
	TypeTimetable ContentType = "timetable"
)

var ContentTypes = []ContentType{TypeNote, TypeVideo, TypePYQ, TypeImportant, TypeSyllabus, TypeTimetable}

func (t ContentType) Valid() bool {
	for _, ct := range ContentTypes {
		if t == ct {
			return true
		}
	}
	return false
}

type Content struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        ContentType `json:"type"`
	Status      Status      `json:"status" swaggertype:"string" enums:"pending,approved,rejected"`
	UploaderID  uuid.UUID   `json:"uploaderId"`
	FileURL     string      `json:"fileUrl,omitempty"`
	Department  string      `json:"department,omitempty"`
	Branch      string      `json:"branch,omitempty"`
	Year        string      `json:"year,omitempty"`
	Subject     string      `json:"subject,omitempty"`
	Topic       string      `json:"topic,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ContentWithUploader — материал с подтянутым автором (uploader = nil, если автор не найден).
type ContentWithUploader struct {
	Content
	Uploader *UploaderSummary `json:"uploader"`
}

// ContentFilter: пустое поле не ограничивает выборку.
type ContentFilter struct {
	Department string
	Branch     string
	Year       string
	Subject    string
	Topic      string
	Type       ContentType
}

// swagger:model CreateContentRequest
type CreateContentRequest struct {
	Title       string      `json:"title"       example:"Operating Systems, Unit 3 notes"`
	Description string      `json:"description" example:"Paging, segmentation, TLB"`
	Type        ContentType `json:"type"        example:"note"`
	FileURL     string      `json:"fileUrl"     example:"https://files.example.com/os-unit3.pdf"`
	Department  string      `json:"department"  example:"UIT"`
	Branch      string      `json:"branch"      example:"CSE"`
	Year        string      `json:"year"        example:"3"`
	Subject     string      `json:"subject"     example:"Operating Systems"`
	Topic       string      `json:"topic"       example:"Memory management"`
}
