package model

import (
	"time"
)

// Generation is the persisted history of one generate call. The feedback
// log, not this table, is the source of truth for training datasets; rows
// here exist so reviewers can pull up what a generation id produced.
type Generation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	GenerationID string    `json:"generation_id" gorm:"size:64;uniqueIndex"` // UUID
	Section      string    `json:"section" gorm:"size:10;not null"`          // 242, 244, 246, all
	Mode         string    `json:"mode" gorm:"size:20;not null"`             // ai, template
	Facts        string    `json:"facts" gorm:"type:text"`                   // submitted ProjectFacts as JSON
	Line242      string    `json:"line242" gorm:"type:text"`
	Line244      string    `json:"line244" gorm:"type:text"`
	Line246      string    `json:"line246" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Generation) TableName() string {
	return "generations"
}

// SectionsMap rebuilds the response-shaped mapping from the stored row,
// omitting lines that were not generated.
func (g *Generation) SectionsMap() Sections {
	sections := Sections{}
	if g.Line242 != "" {
		sections[KeyLine242] = g.Line242
	}
	if g.Line244 != "" {
		sections[KeyLine244] = g.Line244
	}
	if g.Line246 != "" {
		sections[KeyLine246] = g.Line246
	}
	return sections
}
