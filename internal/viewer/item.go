package viewer

import "time"

const unknownUploader = "Unknown User"

// Uploader всегда заполнен, даже если автор не найден.
type Uploader struct {
	ID        string
	Name      string
	Email     string
	Avatar    string
	Role      string
	Branch    string
	Year      string
	Points    int
	CreatedAt time.Time
}

type Item struct {
	ID          string
	Title       string
	Description string
	Type        string
	Status      string
	FileURL     string
	Department  string
	Branch      string
	Year        string
	Subject     string
	Topic       string
	Uploader    Uploader
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type envelope struct {
	Success bool        `json:"success"`
	Data    []rawRecord `json:"data"`
	Error   string      `json:"error"`
	Message string      `json:"message"`
}

type rawUploader struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Role      string `json:"role"`
	Branch    string `json:"branch"`
	Year      string `json:"year"`
	Points    int    `json:"points"`
	CreatedAt string `json:"createdAt"`
}

type rawRecord struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        string       `json:"type"`
	Status      string       `json:"status"`
	UploaderID  string       `json:"uploaderId"`
	FileURL     string       `json:"fileUrl"`
	Department  string       `json:"department"`
	Branch      string       `json:"branch"`
	Year        string       `json:"year"`
	Subject     string       `json:"subject"`
	Topic       string       `json:"topic"`
	Uploader    *rawUploader `json:"uploader"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

func (r rawRecord) normalize(now time.Time) Item {
	it := Item{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Status:      r.Status,
		FileURL:     r.FileURL,
		Department:  r.Department,
		Branch:      r.Branch,
		Year:        r.Year,
		Subject:     r.Subject,
		Topic:       r.Topic,
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}

	if u := r.Uploader; u != nil {
		it.Uploader = Uploader{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Avatar:    u.Avatar,
			Role:      u.Role,
			Branch:    u.Branch,
			Year:      u.Year,
			Points:    u.Points,
			CreatedAt: parseTime(u.CreatedAt),
		}
		if it.Uploader.Name == "" {
			it.Uploader.Name = unknownUploader
		}
		if it.Uploader.CreatedAt.IsZero() {
			it.Uploader.CreatedAt = now
		}
		return it
	}

	it.Uploader = Uploader{ID: r.UploaderID, Name: unknownUploader, CreatedAt: now}
	return it
}

// parseTime понимает RFC 3339 с наносекундами. Пустая или битая строка даёт нулевое время.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
