package models

import "time"

// Document is metadata for a downloadable file. FileSize is a byte count;
// the file itself is not stored by the portal.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	UploadDate time.Time `json:"uploadDate"`
}

type DocumentInput struct {
	Name     string
	FileName string
	FileSize int64
}

func NewDocument(id string, in DocumentInput, uploadDate time.Time) Document {
	return Document{
		ID:         id,
		Name:       in.Name,
		FileName:   in.FileName,
		FileSize:   in.FileSize,
		UploadDate: uploadDate,
	}
}

type DocumentPatch struct {
	Name     *string
	FileName *string
	FileSize *int64
}

func (p DocumentPatch) Apply(d *Document) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.FileName != nil {
		d.FileName = *p.FileName
	}
	if p.FileSize != nil {
		d.FileSize = *p.FileSize
	}
}
