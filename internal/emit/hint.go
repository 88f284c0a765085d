package emit

import (
	"fmt"
	"hash/fnv"

	"golang.org/x/text/unicode/norm"

	"optics-generator/internal/derive"
	"optics-generator/internal/model"
)

// NestedHint returns the file name of the nested accessors a container holds
// for one target and family. The hash covers the NFC-normalized qualified
// identities of both types and the family name, so repeated runs over
// unchanged input reproduce the same name.
func NestedHint(container, target model.TypeID, family derive.Family, members int, suffix string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(norm.NFC.String(container.String() + ", " + target.String() + ", " + family.String())))

	return fmt.Sprintf("%s_%d.%08x%s", SnakeCase(target.Name), members, h.Sum32(), suffix)
}

// SharedHint returns the file name of a shared selector file, e.g. lens_of.gen.go.
func SharedHint(prefix, suffix string) string {
	return SnakeCase(prefix) + suffix
}
