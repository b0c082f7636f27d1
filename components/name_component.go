package components

// NameComponent stores the display name of an actor and the template it was built from
type NameComponent struct {
	Name     string
	Template string
}

// NewNameComponent creates a name component for an actor built from template
func NewNameComponent(name, template string) *NameComponent {
	return &NameComponent{Name: name, Template: template}
}
