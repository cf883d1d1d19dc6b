package analysis

// DefaultSettleBand is the settling band as a fraction of the step size.
const DefaultSettleBand = 0.02

// csvPrecision is the number of decimals written per float in CSV output.
const csvPrecision = 9
