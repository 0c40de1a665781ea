package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// Weighted is a representative colour together with the number of
// image pixels it stands for.
type Weighted struct {
	Colour     RGB
	Population int
}

// Quantiser reduces an image to at most K representative colours using
// weighted k-means clustering over the distinct pixel colours.
type Quantiser struct {
	maxIterations int
	convergence   float64
}

// NewQuantiser creates a Quantiser with default settings.
func NewQuantiser() *Quantiser {
	return &Quantiser{
		maxIterations: 20,
		convergence:   2.0,
	}
}

// Quantise extracts up to count representative colours from the image.
// The populations of the returned colours sum to the pixel count of
// the image. The result is deterministic: the same image and count
// always produce the same colours in the same order.
func (q *Quantiser) Quantise(img image.Image, count int) ([]Weighted, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image has no pixels")
	}

	// Count distinct colours, preserving first-occurrence order so the
	// output is stable across runs.
	var order []RGB
	counts := make(map[RGB]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgb := ToRGB(img.At(x, y))
			if counts[rgb] == 0 {
				order = append(order, rgb)
			}
			counts[rgb]++
		}
	}

	// Fewer distinct colours than requested: no clustering needed.
	if len(order) <= count {
		out := make([]Weighted, len(order))
		for i, rgb := range order {
			out[i] = Weighted{Colour: rgb, Population: counts[rgb]}
		}
		return out, nil
	}

	points := make([]point3D, len(order))
	weights := make([]int, len(order))
	for i, rgb := range order {
		points[i] = point3D{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B)}
		weights[i] = counts[rgb]
	}

	centroids, populations := q.kmeans(points, weights, count)

	out := make([]Weighted, 0, len(centroids))
	for i, c := range centroids {
		if populations[i] == 0 {
			continue
		}
		out = append(out, Weighted{
			Colour:     RGB{R: roundComp(c.R), G: roundComp(c.G), B: roundComp(c.B)},
			Population: populations[i],
		})
	}
	return out, nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func roundComp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// kmeans performs weighted k-means clustering over distinct colours.
// Returns centroids and their populations (sums of member weights).
func (q *Quantiser) kmeans(points []point3D, weights []int, k int) ([]point3D, []int) {
	// A fixed seed keeps the clustering reproducible for a given image.
	rng := rand.New(rand.NewSource(1))

	centroids := q.initializeCentroidsKMeansPlusPlus(points, weights, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < q.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// If very few assignments changed (< 1%), we've converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := q.recalculateCentroids(points, weights, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < q.convergence {
			break
		}
	}

	populations := make([]int, k)
	for i, assignment := range assignments {
		populations[assignment] += weights[i]
	}
	return centroids, populations
}

// initializeCentroidsKMeansPlusPlus seeds centroids with the k-means++
// algorithm, weighting the choice by pixel population as well as
// squared distance.
func (q *Quantiser) initializeCentroidsKMeansPlusPlus(points []point3D, weights []int, k int, rng *rand.Rand) []point3D {
	if len(points) == 0 || k == 0 {
		return []point3D{}
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		totalDistance := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				dist := point.distance(centroid)
				if dist < minDist {
					minDist = dist
				}
			}
			distances[i] = minDist * minDist * float64(weights[i])
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// All remaining points coincide with existing centroids;
			// perturb the last centroid slightly to keep k clusters.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		dist := point.distance(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids recomputes centroid positions as the
// population-weighted mean of assigned colours.
func (q *Quantiser) recalculateCentroids(points []point3D, weights []int, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	totals := make([]float64, k)

	for i, point := range points {
		cluster := assignments[i]
		w := float64(weights[i])
		sums[cluster].R += point.R * w
		sums[cluster].G += point.G * w
		sums[cluster].B += point.B * w
		totals[cluster] += w
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if totals[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / totals[i],
				G: sums[i].G / totals[i],
				B: sums[i].B / totals[i],
			}
		} else {
			// Empty cluster: park it on the heaviest colour so the next
			// iteration can reassign members deterministically.
			centroids[i] = points[heaviest(weights)]
		}
	}
	return centroids
}

func heaviest(weights []int) int {
	best := 0
	for i, w := range weights {
		if w > weights[best] {
			best = i
		}
	}
	return best
}
