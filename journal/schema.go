package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	instrument TEXT NOT NULL,
	direction TEXT NOT NULL DEFAULT 'long',
	units REAL NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	entry_time DATETIME NOT NULL,
	exit_time DATETIME NOT NULL,
	pnl REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS habits (
	habit_id TEXT PRIMARY KEY,
	label TEXT NOT NULL,
	emoji TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS habit_days (
	date TEXT NOT NULL,
	habit_id TEXT NOT NULL,
	completed INTEGER NOT NULL,
	PRIMARY KEY (date, habit_id)
);

CREATE INDEX IF NOT EXISTS idx_trades_entry_time ON trades(entry_time);
`
