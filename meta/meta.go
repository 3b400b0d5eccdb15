package meta

// WIDTH defines the default number of columns of the grid.
const WIDTH = 10

// HEIGHT defines the default number of rows of the grid.
const HEIGHT = 10

// WUMPUSES defines the default number of hazards.
const WUMPUSES = 2

// PITS defines the default number of static obstacles.
const PITS = 3

// GOLD defines the default number of gold pieces.
const GOLD = 2

// DIRECTION_PROBABILITY is the chance a non-deterministic move goes where intended.
const DIRECTION_PROBABILITY = 0.8

// SENSE_DISTANCE is the separation under which a reactive hazard chases the avatar.
const SENSE_DISTANCE = 5.0

// DEPTH_LIMIT defines the default ceiling for depth-limited search.
const DEPTH_LIMIT = 20

const MAX_TURNS = 300

// GO_ROUTINES defines the number of concurrent experiment runs.
const GO_ROUTINES = 8

// SEED is used when no seed is configured.
const SEED = 42
