package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
    seq            INTEGER PRIMARY KEY AUTOINCREMENT,
    id             TEXT NOT NULL UNIQUE,
    exercise_type  TEXT NOT NULL,
    reps           INTEGER NOT NULL CHECK (reps >= 0),
    logged_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    exercise_type  TEXT PRIMARY KEY,
    daily          INTEGER NOT NULL CHECK (daily >= 0),
    weekly         INTEGER NOT NULL DEFAULT 0 CHECK (weekly >= 0),
    updated_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_type ON records(exercise_type);
CREATE INDEX IF NOT EXISTS idx_records_logged ON records(logged_at);
`
