package database

// migrationsSQL contains all database migrations, applied in order by
// version number. Each migration is idempotent.
var migrationsSQL = map[int]string{
	1: migrationV1HolidaySchema,
	2: migrationV2SeedHolidays,
}

// migrationV1HolidaySchema creates the holiday-definition table.
//
// Definitions are positions in the Hebrew year, not dates: month + day
// with Nisan-first month ordinals. Concrete Gregorian dates are computed
// at request time through the conversion engine, so the table never needs
// per-year rows.
const migrationV1HolidaySchema = `
-- Migration 001: holiday definitions

CREATE TABLE IF NOT EXISTS holidays (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    name TEXT NOT NULL UNIQUE,
    category TEXT NOT NULL CHECK (category IN ('major', 'minor', 'fast', 'modern')),

    -- Hebrew month (Nisan-first ordinal 1..12; 12 = Adar, observed in
    -- the final Adar of leap years) and day of month.
    month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
    day INTEGER NOT NULL CHECK (day BETWEEN 1 AND 30),

    -- Observance length in days, counting the start date.
    days INTEGER NOT NULL DEFAULT 1 CHECK (days BETWEEN 1 AND 8),

    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_holidays_month_day ON holidays(month, day);
`

// migrationV2SeedHolidays loads the fixed holiday set. INSERT OR IGNORE
// keeps the migration re-runnable against an already-seeded table.
const migrationV2SeedHolidays = `
-- Migration 002: seed the fixed holiday definitions

INSERT OR IGNORE INTO holidays (name, category, month, day, days) VALUES
    ('Rosh Hashanah',    'major',  7,  1, 2),
    ('Tzom Gedaliah',    'fast',   7,  3, 1),
    ('Yom Kippur',       'major',  7, 10, 1),
    ('Sukkot',           'major',  7, 15, 7),
    ('Shemini Atzeret',  'major',  7, 22, 1),
    ('Simchat Torah',    'major',  7, 23, 1),
    ('Chanukah',         'minor',  9, 25, 8),
    ('Asarah BeTevet',   'fast',  10, 10, 1),
    ('Tu BiShvat',       'minor', 11, 15, 1),
    ('Taanit Esther',    'fast',  12, 13, 1),
    ('Purim',            'minor', 12, 14, 1),
    ('Shushan Purim',    'minor', 12, 15, 1),
    ('Pesach',           'major',  1, 15, 7),
    ('Pesach Sheni',     'minor',  2, 14, 1),
    ('Lag BaOmer',       'minor',  2, 18, 1),
    ('Shavuot',          'major',  3,  6, 1),
    ('Tzom Tammuz',      'fast',   4, 17, 1),
    ('Tisha BeAv',       'fast',   5,  9, 1),
    ('Tu BeAv',          'minor',  5, 15, 1);
`
