// Package proximity computes the Eisenbrand-Weismantel proximity bound
// that pgraph uses to size its search radius: how far (in L-infinity
// distance) an optimal integral solution can lie from a starting point
// near the LP relaxation, expressed purely in terms of A's largest
// entry and b's infinity norm.
package proximity
