package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Listing queries.
const (
	queryInsertListing = `
		INSERT INTO listings (
			listing_id, title, description,
			price, price_unit, rooms, bedrooms, surface, surface_unit,
			postal_code, city, country, latitude, longitude,
			photo_count, thumbnail, permalink, published_at, first_seen_at
		) VALUES (
			@listing_id, @title, @description,
			@price, @price_unit, @rooms, @bedrooms, @surface, @surface_unit,
			@postal_code, @city, @country, @latitude, @longitude,
			@photo_count, @thumbnail, @permalink, @published_at, now()
		)
		ON CONFLICT (listing_id) DO NOTHING
		RETURNING first_seen_at`

	queryGetListing = `
		SELECT listing_id, title, description,
			price, price_unit, rooms, bedrooms, surface, surface_unit,
			postal_code, city, country, latitude, longitude,
			photo_count, thumbnail, permalink, published_at, first_seen_at
		FROM listings
		WHERE listing_id = $1`

	queryListSeenListings = `
		SELECT l.listing_id, l.title, l.description,
			l.price, l.price_unit, l.rooms, l.bedrooms, l.surface, l.surface_unit,
			l.postal_code, l.city, l.country, l.latitude, l.longitude,
			l.photo_count, l.thumbnail, l.permalink, l.published_at, l.first_seen_at
		FROM listings l
		JOIN visibility v ON v.listing_id = l.listing_id
		WHERE v.owner = $1
			AND v.deal_type = $2
			AND ($3 = '' OR l.postal_code = $3)
		ORDER BY l.first_seen_at`
)

// Visibility queries.
const (
	queryRecordSeen = `
		INSERT INTO visibility (key, listing_id, owner, deal_type, notified, created_at)
		VALUES (@key, @listing_id, @owner, @deal_type, FALSE, now())
		ON CONFLICT (key) DO NOTHING`

	// Select-and-flip in one statement so two concurrent drains can
	// never hand out the same record twice.
	queryDrainUnnotified = `
		WITH pending AS (
			SELECT key FROM visibility
			WHERE NOT notified
			ORDER BY created_at
			FOR UPDATE SKIP LOCKED
		), flipped AS (
			UPDATE visibility v SET notified = TRUE
			FROM pending p
			WHERE v.key = p.key
			RETURNING v.key, v.listing_id, v.owner, v.deal_type, v.notified, v.created_at
		)
		SELECT key, listing_id, owner, deal_type, notified, created_at
		FROM flipped
		ORDER BY created_at, key`
)

// Search queries.
const (
	// Criteria are immutable once stored; a conflicting insert only
	// reactivates a previously disabled search. The xmax = 0 test is
	// true only for rows this statement freshly inserted.
	queryCreateSearch = `
		INSERT INTO searches (
			id, owner, active, postal_code, min_surface, max_price,
			deal_type, min_rooms, created_at
		) VALUES (
			@id, @owner, TRUE, @postal_code, @min_surface, @max_price,
			@deal_type, @min_rooms, now()
		)
		ON CONFLICT (id) DO UPDATE SET active = TRUE
		RETURNING (xmax = 0), created_at`

	queryDisableSearch = `
		UPDATE searches SET active = FALSE
		WHERE id = $1 AND owner = $2 AND active`

	queryListSearches = `
		SELECT id, owner, active, postal_code, min_surface, max_price,
			deal_type, min_rooms, created_at
		FROM searches
		WHERE owner = $1
		ORDER BY created_at`

	queryListActiveSearches = `
		SELECT id, owner, active, postal_code, min_surface, max_price,
			deal_type, min_rooms, created_at
		FROM searches
		WHERE active
		ORDER BY created_at`
)
