// Package jsondoc reads, mutates and rewrites JSON documents such as
// package.json and package-lock.json while keeping the order of their keys.
// Documents are held as *orderedmap.OrderedMap; nested objects are walked
// with the String, SetString and Object helpers, which report missing keys
// as *KeyNotFoundError.
package jsondoc
