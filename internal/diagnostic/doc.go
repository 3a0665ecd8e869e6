// Package diagnostic provides structured warnings and notices collected
// during a generation run.
//
// Key capabilities:
//   - Empty value set skips
//   - Duplicate constant reports (later declarations dropped)
//   - Class name budget warnings (prefix and suffix leave no room)
//   - Truncated class name notices
//   - Fields whose values live in a global value set
//   - Include entries that matched nothing
package diagnostic
