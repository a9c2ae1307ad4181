// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of sorted containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations: [Int], [Byte], [String] and [NaturalString].
// These types are designed to work with [github.com/amp-labs/sortedlist/sortedlist.SortedList]
// and the underlying [github.com/amp-labs/sortedlist/avl.Tree].
//
// Sortable asks for two methods, Equals and LessThan. Containers derive a three-way
// comparison from them with [Compare].
//
// # Usage
//
//	list := sortedlist.New[sortable.Int]()
//	list.Add(sortable.Int(42))
//	list.Add(sortable.Int(10))
//	list.Add(sortable.Int(42))
//
//	// Elements are returned in sorted order: 10, 42, 42
//	for val := range list.All() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// The order must be total. If neither a.LessThan(b) nor b.LessThan(a) holds then
// a.Equals(b) must be true, otherwise containers cannot locate stored elements.
//
// # Hashing
//
// All wrapper types also implement [github.com/amp-labs/sortedlist/hashing.Hashable],
// so a container of them can be digested with any hashing.HashFunc.
package sortable
