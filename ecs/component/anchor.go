package component

// BottomAnchor keeps an entity's visual bottom edge on the display's bottom edge.
type BottomAnchor struct{}

var BottomAnchorComponent = NewComponent[BottomAnchor]()
