package ui

// AppMode represents which surface receives input: the card grid or the modal.
type AppMode int

const (
	ModeGallery AppMode = iota
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeGallery:
		return "Gallery"
	case ModeModal:
		return "Modal"
	default:
		return "Unknown"
	}
}
