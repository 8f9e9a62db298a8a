// Package ui implements the project gallery as a Bubble Tea program.
//
// Core pieces:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - GalleryView: The card grid, its staggered reveals and the page scroll
//   - Card: One project in the grid, with click zones for its links
//   - ProjectModal: The detail overlay; one per gallery
//   - Stagger: Per-card reveal ticks, cancellable as a group
//   - KeybindRegistry: Leader-key bindings plus the transient Escape binding
//
// AppModel ties them together and routes keys and mouse clicks to whichever
// of the gallery or the modal currently has input.
package ui
