// Package query parses path expressions and resolves them against a value tree.
//
// A path is a list of keys joined by a separator, for example "db/redis/port"
// with the separator "/". The last segment may name several sibling keys
// joined by "+":
//
//	"db/redis/server+port" -> [db redis] then keys [server port]
//
// Resolve walks every segment but the last through mappings, then looks up
// each terminal key in the same mapping. The lookup is all-or-nothing: a
// single missing key fails the whole resolution with ErrPathNotFound.
package query
