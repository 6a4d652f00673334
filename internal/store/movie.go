package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/cinegraph/cinegraph/internal/models"
)

// MovieStore provides single-movie lookups, vote increments, and title search.
type MovieStore struct {
	Base
}

// NewMovieStore creates a MovieStore.
func NewMovieStore(base Base) *MovieStore {
	return &MovieStore{Base: base}
}

const findMovieQuery = `
	MATCH (movie:Movie {title:$title})
	OPTIONAL MATCH (movie)<-[r]-(person:Person)
	WITH movie.title AS title,
	     movie.tagline AS tagline,
	     movie.released AS released,
	     movie.votes AS votes,
	     collect({
	        name: person.name,
	        job: head(split(toLower(type(r)),'_')),
	        role: r.roles
	     }) AS cast
	RETURN title, tagline, released, votes, cast
	LIMIT 1`

// FindMovie returns the movie with the exact title, including its aggregated
// cast, or models.ErrMovieNotFound.
func (s *MovieStore) FindMovie(ctx context.Context, title string) (*models.Movie, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	session := s.DB.ReadSession(ctx)
	defer session.Close(ctx) //nolint:errcheck // read-only session.

	result, err := session.Run(ctx, findMovieQuery, map[string]any{"title": title})
	if err != nil {
		return nil, fmt.Errorf("querying movie: %w", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("reading movie record: %w", err)
		}

		return nil, models.ErrMovieNotFound
	}

	record := result.Record()
	movie := &models.Movie{
		Title:    recordString(record, "title"),
		Tagline:  recordString(record, "tagline"),
		Released: recordInt64(record, "released"),
		Votes:    recordInt64(record, "votes"),
		Cast:     recordCast(record),
	}

	if _, err := result.Consume(ctx); err != nil {
		return nil, fmt.Errorf("consuming movie result: %w", err)
	}

	return movie, nil
}

const voteQuery = `
	MATCH (movie:Movie {title:$title})
	SET movie.votes = coalesce(movie.votes, 0) + 1
	RETURN movie.votes AS votes`

// Vote increments the vote counter on the movie with the exact title and
// returns the new total, or models.ErrMovieNotFound.
func (s *MovieStore) Vote(ctx context.Context, title string) (*models.VoteResult, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	session := s.DB.WriteSession(ctx)
	defer session.Close(ctx) //nolint:errcheck // session cleanup.

	votes, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (int64, error) {
		result, err := tx.Run(ctx, voteQuery, map[string]any{"title": title})
		if err != nil {
			return 0, fmt.Errorf("running vote update: %w", err)
		}

		if !result.Next(ctx) {
			if err := result.Err(); err != nil {
				return 0, fmt.Errorf("reading vote record: %w", err)
			}

			return 0, models.ErrMovieNotFound
		}

		v, _ := result.Record().Get("votes")
		votes, ok := v.(int64)
		if !ok {
			return 0, fmt.Errorf("unexpected votes value %T", v)
		}

		return votes, nil
	})
	if err != nil {
		return nil, err
	}

	return &models.VoteResult{Votes: votes}, nil
}

const searchQuery = `
	MATCH (movie:Movie)
	WHERE toLower(movie.title) CONTAINS toLower($part)
	RETURN movie
	SKIP $offset LIMIT $limit`

// Search returns movies whose title contains the query substring,
// case-insensitively, with offset/limit pagination.
func (s *MovieStore) Search(ctx context.Context, query string, offset, limit int) ([]models.MovieResult, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	session := s.DB.ReadSession(ctx)
	defer session.Close(ctx) //nolint:errcheck // read-only session.

	result, err := session.Run(ctx, searchQuery, map[string]any{
		"part":   query,
		"offset": offset,
		"limit":  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("querying movie search: %w", err)
	}

	movies := make([]models.MovieResult, 0, limit)

	for result.Next(ctx) {
		v, _ := result.Record().Get("movie")

		node, ok := v.(neo4j.Node)
		if !ok {
			return nil, fmt.Errorf("unexpected search record value %T", v)
		}

		movies = append(movies, models.MovieResult{Movie: movieFromProps(node.Props)})
	}

	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("iterating search results: %w", err)
	}

	return movies, nil
}

// movieFromProps builds a Movie view from a node property map (no cast).
func movieFromProps(props map[string]any) models.Movie {
	return models.Movie{
		Title:    optString(props, "title"),
		Tagline:  optString(props, "tagline"),
		Released: optInt64(props, "released"),
		Votes:    optInt64(props, "votes"),
	}
}

func recordString(record *neo4j.Record, key string) *string {
	v, _ := record.Get(key)
	if s, ok := v.(string); ok {
		return &s
	}

	return nil
}

func recordInt64(record *neo4j.Record, key string) *int64 {
	v, _ := record.Get(key)
	if n, ok := v.(int64); ok {
		return &n
	}

	return nil
}

// recordCast decodes the collected cast maps. The OPTIONAL MATCH emits one
// all-null entry for movies without people; entries without a name are
// dropped.
func recordCast(record *neo4j.Record) []models.CastMember {
	v, _ := record.Get("cast")

	entries, ok := v.([]any)
	if !ok {
		return nil
	}

	cast := make([]models.CastMember, 0, len(entries))

	for _, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}

		name, ok := m["name"].(string)
		if !ok || name == "" {
			continue
		}

		member := models.CastMember{Name: name}

		if job, ok := m["job"].(string); ok {
			member.Job = job
		}

		if roles, ok := m["role"].([]any); ok {
			for _, r := range roles {
				if role, ok := r.(string); ok {
					member.Role = append(member.Role, role)
				}
			}
		}

		cast = append(cast, member)
	}

	if len(cast) == 0 {
		return nil
	}

	return cast
}
