// SPDX-License-Identifier: MIT

package jagged

// SplitAt divides the Array into rows [0,k) and [k,Rows()) sharing one buffer.
// MAIN DESCRIPTION:
//   - Hand out two non-overlapping Arrays so independent code can own
//     disjoint groups of rows at the same time.
//
// Implementation:
//   - Stage 1: validate 0 <= k <= Rows().
//   - Stage 2: head reuses the offset prefix; tail gets a rebased copy.
//
// Behavior highlights:
//   - Both halves satisfy every layout invariant on their own.
//   - Each half's buffer is capacity-clipped, so neither can reach the other's elements.
//   - Value writes through either half are visible in the parent.
//
// Errors:
//   - ErrIndexOutOfBounds when k < 0 or k > Rows().
//
// Complexity:
//   - Time O(Rows()-k), Space O(Rows()-k) for the rebased tail offsets.
func (a *Array[T]) SplitAt(k int) (head, tail *Array[T], err error) {
	n := a.Rows()
	if k < 0 || k > n {
		return nil, nil, rowErrorf(ctxSplitAt, k, ErrIndexOutOfBounds)
	}
	if n == 0 {
		return FromRows[T](nil), FromRows[T](nil), nil
	}

	mid := a.offsets[k]
	end := len(a.data)

	rebased := make([]int, n-k+1)
	var i int
	for i = range rebased {
		rebased[i] = a.offsets[k+i] - mid
	}

	head = &Array[T]{data: a.data[:mid:mid], offsets: a.offsets[: k+1 : k+1]}
	tail = &Array[T]{data: a.data[mid:end:end], offsets: rebased}

	return head, tail, nil
}
