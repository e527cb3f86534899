/*
Package halosample implements random sampling of radial positions from dark-matter
halo density profiles. It provides three interchangeable strategies over the
Navarro-Frenk-White (NFW) profile: rejection sampling under a constant envelope,
inversion of a tabulated cumulative mass function by linear interpolation, and
evaluation of a rational-function approximation of the inverse cumulative mass
function fitted by linear least squares.
*/
package halosample
