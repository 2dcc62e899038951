// Package dfs finds a path through a maze.Grid with depth-first search.
//
// What:
//
//   - Solve explores as far as possible along each branch before
//     backtracking. A cell is entered only if it is in bounds, not a wall
//     and not yet visited. Entering marks it visited and pushes it onto the
//     path stack; when all four neighbors fail the cell is popped again.
//   - Neighbor priority is fixed: up, down, left, right. It decides which
//     of several valid paths is returned.
//
// Why:
//   - DFS returns a path quickly with O(Rows×Cols) memory. It does not
//     return the shortest path.
//
// Key Types:
//
//   - Option / Options: functional options (context, hook, strategy, limits)
//   - Strategy: Iterative (explicit stack) or Recursive (call stack)
//   - Result: Found, Path, Visited, Steps
//
// Complexity:
//
//   - Solve: Time O(Rows×Cols), Memory O(Rows×Cols)
//
// Errors:
//
//   - ErrGridNil, ErrStartOutOfBounds, ErrEndOutOfBounds
//   - context.Canceled, hook errors
package dfs
