// meta/meta.go
package meta

// BOARD_SIZE defines the default board dimension.
const BOARD_SIZE = 8

// MAX_TURNS defines how many agent turns a game may last before it is a draw.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games per matchup.
const NUM_GAMES = 20

// OUTPUT_DIR is the root directory for experiment records.
const OUTPUT_DIR = "experiments"
