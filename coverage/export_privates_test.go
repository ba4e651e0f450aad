package coverage

// NeumaierSum exposes the compensated summation kernel to package tests.
var NeumaierSum = neumaierSum
