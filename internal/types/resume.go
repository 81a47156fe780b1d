// Package types provides type definitions for the structured artifacts
// exchanged between the pipeline stages: the resume content schema and the
// positional template extracted from a source document.
package types

// BulletPoint is a single achievement line within an experience or project.
type BulletPoint struct {
	Text string `json:"text"`
}

// Experience is one work entry in the resume schema.
type Experience struct {
	Title        string        `json:"title"`
	Company      string        `json:"company,omitempty"`
	Dates        string        `json:"dates,omitempty"`
	BulletPoints []BulletPoint `json:"bullet_points,omitempty"`
}

// Project is one project entry in the resume schema.
type Project struct {
	Title        string        `json:"title"`
	BulletPoints []BulletPoint `json:"bullet_points,omitempty"`
}

// ResumeSchema is the content model of a resume. Experiences and projects are
// ordered; their order must match the table order of the source document.
type ResumeSchema struct {
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
}

// Section is the flattened view of a schema entry used during population.
// Projects carry empty Company and Dates.
type Section struct {
	Title   string
	Company string
	Dates   string
	Bullets []BulletPoint
}

// Sections returns experiences followed by projects as a single ordered
// sequence, matching the document-order table sequence of the template.
func (s *ResumeSchema) Sections() []Section {
	sections := make([]Section, 0, len(s.Experiences)+len(s.Projects))
	for _, exp := range s.Experiences {
		sections = append(sections, Section{
			Title:   exp.Title,
			Company: exp.Company,
			Dates:   exp.Dates,
			Bullets: exp.BulletPoints,
		})
	}
	for _, proj := range s.Projects {
		sections = append(sections, Section{
			Title:   proj.Title,
			Bullets: proj.BulletPoints,
		})
	}
	return sections
}

// Shape describes the cardinality of a schema: one bullet count per entry.
type Shape struct {
	Experiences []int
	Projects    []int
}

// Shape returns the entry/bullet cardinality of the schema.
func (s *ResumeSchema) Shape() Shape {
	shape := Shape{
		Experiences: make([]int, len(s.Experiences)),
		Projects:    make([]int, len(s.Projects)),
	}
	for i, exp := range s.Experiences {
		shape.Experiences[i] = len(exp.BulletPoints)
	}
	for i, proj := range s.Projects {
		shape.Projects[i] = len(proj.BulletPoints)
	}
	return shape
}

// Equal reports whether two shapes have the same entry counts and the same
// bullet count for every entry.
func (a Shape) Equal(b Shape) bool {
	if len(a.Experiences) != len(b.Experiences) || len(a.Projects) != len(b.Projects) {
		return false
	}
	for i := range a.Experiences {
		if a.Experiences[i] != b.Experiences[i] {
			return false
		}
	}
	for i := range a.Projects {
		if a.Projects[i] != b.Projects[i] {
			return false
		}
	}
	return true
}
