package compost

// FertilizerPerBinPerDay is the passive output of one compost bin.
const FertilizerPerBinPerDay = 1
