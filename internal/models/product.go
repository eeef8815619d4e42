// server/internal/models/product.go
package models

import "encoding/json"

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsActive    bool    `json:"isActive"`
	Image       Image   `json:"image"`
	CreatedAt   string  `json:"createdAt"`
}

// ImageMetadata describes an uploaded image asset in full.
type ImageMetadata struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	URL          string `json:"url"`
	FileType     string `json:"fileType"`
	FileSize     int64  `json:"fileSize"`
	UploadedDate string `json:"uploadedDate"`
	EntityID     string `json:"entityId"`
}

// Image is the polymorphic image field of a Product. Depending on the storage
// mode it is persisted either as a bare URL string or as a full metadata
// object; older documents may contain either form, so both are accepted on
// load.
type Image struct {
	URL  string
	Meta *ImageMetadata
}

// IsZero reports whether no image is attached.
func (im Image) IsZero() bool {
	return im.Meta == nil && im.URL == ""
}

func (im Image) MarshalJSON() ([]byte, error) {
	if im.Meta != nil {
		return json.Marshal(im.Meta)
	}
	if im.URL == "" {
		return []byte("null"), nil
	}
	return json.Marshal(im.URL)
}

func (im *Image) UnmarshalJSON(data []byte) error {
	*im = Image{}
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &im.URL)
	}
	meta := &ImageMetadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return err
	}
	im.Meta = meta
	im.URL = meta.URL
	return nil
}
