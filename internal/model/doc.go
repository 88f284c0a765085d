// Package model holds the host-neutral descriptors exchanged between the
// type introspector, the derivation engine and the declaration emitter.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeRef: structural reference to a member type, renderable in any package
//   - MemberDescriptor / TargetTypeDescriptor: what a target type looks like
//   - ContainerDescriptor: a caller-designated type that receives nested accessors
//   - TypeIntrospector: the capability a host implements to produce descriptors
package model
