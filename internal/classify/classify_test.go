package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optics-generator/internal/model"
)

func field(name string, typ model.TypeRef) model.MemberDescriptor {
	return model.MemberDescriptor{
		Name:     name,
		Type:     typ,
		Mutable:  true,
		Exported: true,
		Readable: true,
		Writable: true,
	}
}

func names(ms []Member) []string {
	res := make([]string, len(ms))
	for i, m := range ms {
		res[i] = m.Name
	}

	return res
}

func skippedNames(ss []Skipped) []string {
	res := make([]string, len(ss))
	for i, s := range ss {
		res[i] = s.Name
	}

	return res
}

func TestCheck(t *testing.T) {
	base := field("Name", model.Basic("string"))

	tests := []struct {
		name   string
		mutate func(*model.MemberDescriptor)
		want   Reason
	}{
		{"eligible", func(*model.MemberDescriptor) {}, Eligible},
		{"write once", func(m *model.MemberDescriptor) { m.Writable = false; m.WriteOnce = true }, Eligible},
		{"unexported", func(m *model.MemberDescriptor) { m.Exported = false }, NotExported},
		{"write only", func(m *model.MemberDescriptor) { m.Readable = false }, NotReadable},
		{"read only", func(m *model.MemberDescriptor) { m.Writable = false }, NotWritable},
		{"indexed", func(m *model.MemberDescriptor) { m.Indexed = true }, IndexedMember},
		{"static", func(m *model.MemberDescriptor) { m.Static = true }, StaticMember},
		{"constant", func(m *model.MemberDescriptor) { m.Constant = true }, ConstantMember},
		{"excluded", func(m *model.MemberDescriptor) { m.Excluded = true }, ExcludedMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			tt.mutate(&m)
			assert.Equal(t, tt.want, Check(m))
		})
	}
}

func TestMembers_Classification(t *testing.T) {
	address := model.Named(model.TypeID{PkgPath: "p", Name: "Address"}, "p")

	opt := field("Address", model.PointerTo(address))
	opt.Optional = true

	target := &model.TargetTypeDescriptor{
		ID:             model.TypeID{PkgPath: "p", Name: "Person"},
		CopyWithUpdate: true,
		Members: []model.MemberDescriptor{
			field("Name", model.Basic("string")),
			field("Age", model.Basic("int")),
			opt,
		},
	}

	eligible, skipped := Members(target)
	require.Len(t, eligible, 3)
	assert.Empty(t, skipped)

	assert.Equal(t, []string{"Name", "Age", "Address"}, names(eligible))
	assert.Equal(t, ClassPlain, eligible[0].Class)
	assert.Equal(t, ClassPlain, eligible[1].Class)
	assert.Equal(t, ClassOptional, eligible[2].Class)
}

func TestMembers_AncestorsAfterOwnAndShadowing(t *testing.T) {
	inherited := func(name string, depth, index int) model.MemberDescriptor {
		m := field(name, model.Basic("string"))
		m.Depth = depth
		m.Index = index

		return m
	}

	hidden := inherited("secret", 0, 3)
	hidden.Exported = false

	target := &model.TargetTypeDescriptor{
		Members: []model.MemberDescriptor{
			inherited("ID", 1, 0),
			inherited("Name", 0, 1),
			inherited("Name", 1, 2),
			hidden,
			inherited("Email", 0, 4),
			inherited("Created", 2, 5),
			inherited("Email", 2, 6),
		},
	}

	eligible, skipped := Members(target)
	assert.Equal(t, []string{"Name", "Email", "ID", "Created"}, names(eligible))
	assert.Equal(t, 0, eligible[0].Depth, "shallowest Name wins")
	assert.Equal(t, []string{"Name", "Email", "secret"}, skippedNames(skipped))
	assert.Equal(t, Shadowed, skipped[0].Reason)
	assert.Equal(t, NotExported, skipped[2].Reason)
}

func TestMembers_EmptyNeverFails(t *testing.T) {
	eligible, skipped := Members(&model.TargetTypeDescriptor{})
	assert.Empty(t, eligible)
	assert.Empty(t, skipped)
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "plain", ClassPlain.String())
	assert.Equal(t, "optional", ClassOptional.String())
	assert.Equal(t, "unknown", Class(7).String())
}

func TestNameable(t *testing.T) {
	level := model.Named(model.TypeID{PkgPath: "p", Name: "level"}, "p")
	members := []Member{
		{MemberDescriptor: field("Name", model.Basic("string"))},
		{MemberDescriptor: field("Level", level)},
		{MemberDescriptor: field("Levels", model.SliceOf(level))},
	}

	kept, skipped := Nameable(members, "p")
	assert.Equal(t, []string{"Name", "Level", "Levels"}, names(kept))
	assert.Empty(t, skipped)

	kept, skipped = Nameable(members, "q")
	assert.Equal(t, []string{"Name"}, names(kept))
	assert.Equal(t, []string{"Level", "Levels"}, skippedNames(skipped))

	for _, s := range skipped {
		assert.Equal(t, Unnameable, s.Reason)
	}
}
