package helios

import "github.com/gibme-c/helioselene/fq"

// Scalar is an element of the Helios scalar field, F_q.
type Scalar = fq.Element
