package component

// PetTag marks the entity built from the pet prefab.
type PetTag struct {
	Name string
}

var PetTagComponent = NewComponent[PetTag]()
