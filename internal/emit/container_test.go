package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optics-generator/internal/derive"
	"optics-generator/internal/model"
)

func TestEmit_SharedShape(t *testing.T) {
	person := target(personID)
	res := &derive.Result{Groups: []derive.Group{
		group(person, derive.FamilyLens, nil),
		group(person, derive.FamilyOptionalOwner, nil),
	}}

	containers := NewEmitter(DefaultConfig()).Emit(res)
	require.Len(t, containers, 2)

	lenses := containers[0]
	assert.Equal(t, derive.ShapeShared, lenses.Shape)
	assert.Equal(t, "lens_of.gen.go", lenses.Hint)
	assert.Equal(t, "/src/people", lenses.Dir)
	require.Len(t, lenses.Sections, 1)
	assert.Equal(t, "LensOfPerson", lenses.Sections[0].Selector)

	decls := lenses.Sections[0].Declarations
	require.Len(t, decls, 2)
	assert.Equal(t, "Name", decls[0].Name)
	assert.Equal(t, []string{"people", "LensOfPerson", "Name"}, decls[0].Path)
	assert.Equal(t, "Address", decls[1].Name)

	optionals := containers[1]
	assert.Equal(t, "optional_of.gen.go", optionals.Hint)
	assert.Equal(t, "OptionalOfPerson", optionals.Sections[0].Selector)
}

func TestEmit_SharedSelectorAvoidsTakenNames(t *testing.T) {
	person := target(personID, "Person", "LensOfPerson")
	res := &derive.Result{Groups: []derive.Group{group(person, derive.FamilyLens, nil)}}

	containers := NewEmitter(DefaultConfig()).Emit(res)
	require.Len(t, containers, 1)
	assert.Equal(t, "LensOfPerson2", containers[0].Sections[0].Selector)
}

func TestEmit_SharedContainerPerPackage(t *testing.T) {
	res := &derive.Result{Groups: []derive.Group{
		group(target(personID), derive.FamilyLens, nil),
		group(target(addressID), derive.FamilyLens, nil),
	}}

	containers := NewEmitter(DefaultConfig()).Emit(res)
	require.Len(t, containers, 1)
	require.Len(t, containers[0].Sections, 2)
	assert.Equal(t, "LensOfPerson", containers[0].Sections[0].Selector)
	assert.Equal(t, "LensOfAddress", containers[0].Sections[1].Selector)
}

func TestEmit_NestedShape(t *testing.T) {
	person := target(personID)
	lenses := container(personLens, "people", "/src/people", "Name")
	res := &derive.Result{Groups: []derive.Group{group(person, derive.FamilyLens, lenses)}}

	containers := NewEmitter(DefaultConfig()).Emit(res)
	require.Len(t, containers, 1)

	c := containers[0]
	assert.Equal(t, derive.ShapeNested, c.Shape)
	assert.Equal(t, personLens, c.ID)
	assert.Empty(t, c.Hint)
	require.Len(t, c.Sections, 1)
	assert.Equal(t, "person_2.1c4efbd5.gen.go", c.Sections[0].Hint)

	decls := c.Sections[0].Declarations
	assert.Equal(t, "Name2", decls[0].Name)
	assert.Equal(t, []string{"people", "personLens", "Name2"}, decls[0].Path)
	assert.Equal(t, "Address", decls[1].Name)
}

func TestEmit_NestedContainerSharesNamespace(t *testing.T) {
	lenses := container(staffLenses, "hr", "/src/hr")
	res := &derive.Result{Groups: []derive.Group{
		group(target(personID), derive.FamilyLens, lenses),
		group(target(personID), derive.FamilyOptionalOwner, lenses),
	}}

	containers := NewEmitter(DefaultConfig()).Emit(res)
	require.Len(t, containers, 1)
	require.Len(t, containers[0].Sections, 2)

	second := containers[0].Sections[1].Declarations
	assert.Equal(t, "Name2", second[0].Name)
	assert.Equal(t, "Address2", second[1].Name)
	assert.Equal(t, "person_2.0b6bb987.gen.go", containers[0].Sections[0].Hint)
	assert.Equal(t, "person_2.327502b2.gen.go", containers[0].Sections[1].Hint)
}

func TestEmit_SkipsEmptyGroups(t *testing.T) {
	empty := derive.Group{Target: target(model.TypeID{PkgPath: peoplePkg, Name: "Empty"})}
	res := &derive.Result{Groups: []derive.Group{empty}}

	assert.Empty(t, NewEmitter(DefaultConfig()).Emit(res))
}

func TestAccessorType(t *testing.T) {
	lens := accessors(target(personID), derive.FamilyLens)
	lifted := accessors(target(personID), derive.FamilyOptionalOwner)

	assert.Equal(t, "optic.Lens[Person, string]", AccessorType(lens[0], peoplePkg, nil))
	assert.Equal(t, "optic.Lens[Person, optic.Option[Address]]", AccessorType(lens[1], peoplePkg, nil))
	assert.Equal(t, "optic.Optional[optic.Option[people.Person], string]", AccessorType(lifted[0], hrPkg, nil))
}
