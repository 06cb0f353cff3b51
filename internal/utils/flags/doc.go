// Package flags renders usage text for selector flags that accept keywords or name lists.
package flags
