package fusion

import "math"

// assignMinCost solves the minimum-total-cost one-to-one assignment over a
// square cost matrix and returns the chosen column for every row. The
// assignment is grown one row at a time along shortest augmenting paths over
// row and column potentials, O(n^3) total. Costs must be finite.
func assignMinCost(cost [][]float64) []int {
	n := len(cost)
	// Rows and columns are 1-based here; column 0 anchors the path being
	// grown. rowByColumn[j] is the row currently assigned to column j.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	rowByColumn := make([]int, n+1)
	way := make([]int, n+1)
	for i := 1; i <= n; i++ {
		rowByColumn[0] = i
		j0 := 0
		minSlack := make([]float64, n+1)
		for j := range minSlack {
			minSlack[j] = math.Inf(1)
		}
		used := make([]bool, n+1)
		for {
			used[j0] = true
			i0 := rowByColumn[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				slack := cost[i0-1][j-1] - u[i0] - v[j]
				if slack < minSlack[j] {
					minSlack[j] = slack
					way[j] = j0
				}
				if minSlack[j] < delta {
					delta = minSlack[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[rowByColumn[j]] += delta
					v[j] -= delta
				} else {
					minSlack[j] -= delta
				}
			}
			j0 = j1
			if rowByColumn[j0] == 0 {
				break
			}
		}
		// Flip the augmenting path back to the anchor column
		for j0 != 0 {
			j1 := way[j0]
			rowByColumn[j0] = rowByColumn[j1]
			j0 = j1
		}
	}
	columns := make([]int, n)
	for j := 1; j <= n; j++ {
		columns[rowByColumn[j]-1] = j - 1
	}
	return columns
}
