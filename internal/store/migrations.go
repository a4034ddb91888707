package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations. The v1 DDL is
// create-if-not-exists throughout so it also adopts databases written by
// earlier releases that carried no schema_version table. Columns added
// after the initial release are patched additively in patchColumns, never
// here, so older installs keep their data.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS workouts (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	split_index  INTEGER NOT NULL,
	planned_name TEXT NOT NULL,
	started_at   TEXT NOT NULL,
	completed_at TEXT
);

CREATE TABLE IF NOT EXISTS logs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	workout_id    INTEGER NOT NULL,
	exercise_name TEXT NOT NULL,
	date          TEXT NOT NULL,
	weight        REAL NOT NULL,
	unit          TEXT NOT NULL DEFAULT 'kg',
	reps          INTEGER NOT NULL,
	set_type      TEXT NOT NULL CHECK (set_type IN ('TOP_SET','BACK_OFF')),
	FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_logs_exercise_date ON logs(exercise_name, date);
CREATE INDEX IF NOT EXISTS idx_logs_workout ON logs(workout_id);

CREATE TABLE IF NOT EXISTS nutrition_logs (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	date     TEXT NOT NULL,
	calories REAL NOT NULL DEFAULT 0,
	protein  REAL NOT NULL DEFAULT 0,
	carbs    REAL NOT NULL DEFAULT 0,
	fat      REAL NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_nutrition_logs_date ON nutrition_logs(date);

CREATE TABLE IF NOT EXISTS nutrition_quota (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	calories REAL NOT NULL DEFAULT 2500,
	protein  REAL NOT NULL DEFAULT 150,
	carbs    REAL NOT NULL DEFAULT 300,
	fat      REAL NOT NULL DEFAULT 80
);
INSERT OR IGNORE INTO nutrition_quota (id, calories, protein, carbs, fat)
	VALUES (1, 2500, 150, 300, 80);

CREATE TABLE IF NOT EXISTS saved_foods (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL,
	calories REAL NOT NULL DEFAULT 0,
	protein  REAL NOT NULL DEFAULT 0,
	carbs    REAL NOT NULL DEFAULT 0,
	fat      REAL NOT NULL DEFAULT 0
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}

// columnPatch describes a column added after a table first shipped.
// Applied with ALTER TABLE ADD COLUMN only when missing.
type columnPatch struct {
	table  string
	column string
	ddl    string
}

// columnPatches are the additive fixes for databases created before the
// column existed.
var columnPatches = []columnPatch{
	{table: "logs", column: "unit", ddl: "unit TEXT NOT NULL DEFAULT 'kg'"},
	{table: "nutrition_logs", column: "food_name", ddl: "food_name TEXT DEFAULT ''"},
}
