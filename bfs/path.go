package bfs

import "fmt"

// ReconstructPath returns the vertices of the tree path start, …, target
// recorded in a predecessor table produced by BFS from start.
//
// Steps:
//  1. Validate start and target against len(pred) (ErrVertexOutOfRange).
//  2. start == target ⇒ [start], a valid zero-length path.
//  3. pred[target] == Unreached ⇒ ErrNoPath.
//  4. Push target, then each predecessor, onto a stack until start is pushed.
//  5. Pop the stack into the result, yielding traversal order.
//
// Every predecessor was discovered strictly before its successor, so a table
// from BFS reaches start in at most len(pred)-1 steps. A chain that runs
// longer, or hits Unreached first, did not come from a traversal rooted at
// start and is reported as ErrBrokenChain.
//
// Complexity: O(path length) time and space.
func ReconstructPath(pred []int, start, target int) ([]int, error) {
	n := len(pred)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrVertexOutOfRange, start, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrVertexOutOfRange, target, n)
	}
	if target == start {
		return []int{start}, nil
	}
	if pred[target] == Unreached {
		return nil, fmt.Errorf("%w: from %d to %d", ErrNoPath, start, target)
	}

	stack := []int{target}
	for cur := target; cur != start; {
		cur = pred[cur]
		if cur < 0 || cur >= n || len(stack) >= n {
			return nil, fmt.Errorf("%w: from %d to %d", ErrBrokenChain, start, target)
		}
		stack = append(stack, cur)
	}

	path := make([]int, 0, len(stack))
	for len(stack) > 0 {
		top := len(stack) - 1
		path = append(path, stack[top])
		stack = stack[:top]
	}

	return path, nil
}
