package sqlstore

const postgresSchema = `
CREATE TABLE IF NOT EXISTS topics (
	slug VARCHAR PRIMARY KEY,
	description VARCHAR NOT NULL
);
CREATE TABLE IF NOT EXISTS users (
	username VARCHAR PRIMARY KEY,
	name VARCHAR NOT NULL,
	avatar_url VARCHAR NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS articles (
	article_id SERIAL PRIMARY KEY,
	title VARCHAR NOT NULL,
	topic VARCHAR NOT NULL REFERENCES topics(slug),
	author VARCHAR NOT NULL REFERENCES users(username),
	body VARCHAR NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	votes INT NOT NULL DEFAULT 0,
	article_img_url VARCHAR NOT NULL DEFAULT 'https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700'
);
CREATE TABLE IF NOT EXISTS comments (
	comment_id SERIAL PRIMARY KEY,
	body VARCHAR NOT NULL,
	article_id INT NOT NULL REFERENCES articles(article_id),
	author VARCHAR NOT NULL REFERENCES users(username),
	votes INT NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS user_follows_topics (
	username VARCHAR NOT NULL REFERENCES users(username),
	topic_slug VARCHAR NOT NULL REFERENCES topics(slug),
	PRIMARY KEY (username, topic_slug)
);
CREATE TABLE IF NOT EXISTS user_follows_users (
	follower_username VARCHAR NOT NULL REFERENCES users(username),
	followee_username VARCHAR NOT NULL REFERENCES users(username),
	PRIMARY KEY (follower_username, followee_username),
	CHECK (follower_username <> followee_username)
);
CREATE INDEX IF NOT EXISTS idx_comments_on_article_id ON comments(article_id);
`

// created_at is declared as TIMESTAMP so that the driver scans it back into a time.Time.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS topics (
	slug TEXT PRIMARY KEY,
	description TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS users (
	username TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	avatar_url TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS articles (
	article_id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	topic TEXT NOT NULL REFERENCES topics(slug),
	author TEXT NOT NULL REFERENCES users(username),
	body TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	votes INTEGER NOT NULL DEFAULT 0,
	article_img_url TEXT NOT NULL DEFAULT 'https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700'
);
CREATE TABLE IF NOT EXISTS comments (
	comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
	body TEXT NOT NULL,
	article_id INTEGER NOT NULL REFERENCES articles(article_id),
	author TEXT NOT NULL REFERENCES users(username),
	votes INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS user_follows_topics (
	username TEXT NOT NULL REFERENCES users(username),
	topic_slug TEXT NOT NULL REFERENCES topics(slug),
	PRIMARY KEY (username, topic_slug)
);
CREATE TABLE IF NOT EXISTS user_follows_users (
	follower_username TEXT NOT NULL REFERENCES users(username),
	followee_username TEXT NOT NULL REFERENCES users(username),
	PRIMARY KEY (follower_username, followee_username),
	CHECK (follower_username <> followee_username)
);
CREATE INDEX IF NOT EXISTS idx_comments_on_article_id ON comments(article_id);
`

const dropSchema = `
DROP TABLE IF EXISTS user_follows_users;
DROP TABLE IF EXISTS user_follows_topics;
DROP TABLE IF EXISTS comments;
DROP TABLE IF EXISTS articles;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS topics;
`
