// Package scaffold generates the declaration/implementation file pair for a
// new GuiElement subclass. It powers the root "guigen <ClassName>" command:
// the text is rendered from embedded templates, written next to the other
// GUI sources, and optionally registered in the aggregate header.
package scaffold
