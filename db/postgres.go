package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Eitve/RKL/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTeamNotFound   error = errors.New("team not found")
	ErrPlayerNotFound error = errors.New("player not found")
	ErrGameNotFound   error = errors.New("game not found")
	ErrNewsNotFound   error = errors.New("news item not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT id, team_name, division, icon, team_photo,
						head_coach, assistant_coach, team_manager, achievements, created
					FROM teams ORDER BY team_name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}

	results := make([]model.Team, 0, 16)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	const query = `SELECT id, team_name, division, icon, team_photo,
						head_coach, assistant_coach, team_manager, achievements, created
					FROM teams WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %s: %w", id, err)
	}
	return t, nil
}

func (db *postgresDB) SaveTeam(ctx context.Context, t *model.Team) error {
	if t == nil {
		return errors.New("SaveTeam - team is nil")
	}
	const query = `INSERT INTO teams (
			id, team_name, division, icon, team_photo,
			head_coach, assistant_coach, team_manager, achievements
		) VALUES (
			@id, @teamName, @division, @icon, @teamPhoto,
			@headCoach, @assistantCoach, @teamManager, @achievements
		)
		ON CONFLICT (id) DO UPDATE SET
			team_name=EXCLUDED.team_name,
			division=EXCLUDED.division,
			icon=EXCLUDED.icon,
			team_photo=EXCLUDED.team_photo,
			head_coach=EXCLUDED.head_coach,
			assistant_coach=EXCLUDED.assistant_coach,
			team_manager=EXCLUDED.team_manager,
			achievements=EXCLUDED.achievements`

	args := pgx.NamedArgs{
		"id":             t.ID,
		"teamName":       t.Name,
		"division":       string(t.Division),
		"icon":           nullString(t.Icon),
		"teamPhoto":      nullString(t.TeamPhoto),
		"headCoach":      nullString(t.HeadCoach),
		"assistantCoach": nullString(t.AssistantCoach),
		"teamManager":    nullString(t.TeamManager),
		"achievements":   t.Achievements,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving team (%s): %w", t.ID, err)
	}
	return nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	var division string
	var icon, photo, headCoach, assistantCoach, manager sql.NullString
	var created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&division,
		&icon,
		&photo,
		&headCoach,
		&assistantCoach,
		&manager,
		&result.Achievements,
		&created)

	if err != nil {
		return nil, err
	}

	result.Division = model.ParseDivision(division)
	result.Icon = valueOrEmpty(icon)
	result.TeamPhoto = valueOrEmpty(photo)
	result.HeadCoach = valueOrEmpty(headCoach)
	result.AssistantCoach = valueOrEmpty(assistantCoach)
	result.TeamManager = valueOrEmpty(manager)
	result.Created = created.Time

	return &result, nil
}

const playerColumns = `team_id, player_key, name_first, name_last, dob,
						nationality, height_cm, weight_kg, shirt_number, position, photo_url,
						avg_games, avg_pts, avg_reb, avg_ast, avg_stl, avg_blk, avg_eff,
						avg_secs, fg_pct, two_pct, three_pct, ft_pct, avg_updated`

func (db *postgresDB) ListPlayers(ctx context.Context, teamID string) ([]model.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE team_id=@teamID ORDER BY name_last, name_first`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"teamID": teamID})
	if err != nil {
		return nil, fmt.Errorf("error listing players for team %s: %w", teamID, err)
	}

	results := make([]model.Player, 0, 16)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetPlayer(ctx context.Context, teamID, playerKey string) (*model.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE team_id=@teamID AND player_key=@playerKey`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"teamID": teamID, "playerKey": playerKey})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s/%s: %w", teamID, playerKey, err)
	}
	return p, nil
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	if p == nil {
		return errors.New("SavePlayer - player is nil")
	}
	if p.Key == "" {
		p.Key = model.PlayerKey(p.FirstName, p.LastName)
	}
	const query = `INSERT INTO players (
			team_id, player_key, name_first, name_last, dob,
			nationality, height_cm, weight_kg, shirt_number, position, photo_url
		) VALUES (
			@teamID, @playerKey, @nameFirst, @nameLast, @dob,
			@nationality, @height, @weight, @shirtNumber, @position, @photoURL
		)
		ON CONFLICT (team_id, player_key) DO UPDATE SET
			name_first=EXCLUDED.name_first,
			name_last=EXCLUDED.name_last,
			dob=EXCLUDED.dob,
			nationality=EXCLUDED.nationality,
			height_cm=EXCLUDED.height_cm,
			weight_kg=EXCLUDED.weight_kg,
			shirt_number=EXCLUDED.shirt_number,
			position=EXCLUDED.position,
			photo_url=EXCLUDED.photo_url`

	args := pgx.NamedArgs{
		"teamID":    p.TeamID,
		"playerKey": p.Key,
		"nameFirst": p.FirstName,
		"nameLast":  p.LastName,
		"dob": pgtype.Date{
			Time:  p.BirthDate,
			Valid: !p.BirthDate.IsZero(),
		},
		"nationality": nullString(p.Nationality),
		"height":      p.Height,
		"weight":      p.Weight,
		"shirtNumber": sql.NullInt32{
			Int32: int32(p.ShirtNumber),
			Valid: p.ShirtNumber > 0,
		},
		"position": string(p.Position),
		"photoURL": nullString(p.PhotoURL),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving player (%s %s): %w", p.FirstName, p.LastName, err)
	}
	return nil
}

func (db *postgresDB) UpdatePlayerAverages(ctx context.Context, teamID, playerKey string, avg *model.SeasonAverages) error {
	if avg == nil {
		return errors.New("UpdatePlayerAverages - averages are nil")
	}
	const query = `UPDATE players SET
			avg_games=@games,
			avg_pts=@pts,
			avg_reb=@reb,
			avg_ast=@ast,
			avg_stl=@stl,
			avg_blk=@blk,
			avg_eff=@eff,
			avg_secs=@secs,
			fg_pct=@fgPct,
			two_pct=@twoPct,
			three_pct=@threePct,
			ft_pct=@ftPct,
			avg_updated=@updated
		WHERE team_id=@teamID AND player_key=@playerKey`

	args := pgx.NamedArgs{
		"teamID":    teamID,
		"playerKey": playerKey,
		"games":     avg.GamesPlayed,
		"pts":       avg.Points,
		"reb":       avg.Rebounds,
		"ast":       avg.Assists,
		"stl":       avg.Steals,
		"blk":       avg.Blocks,
		"eff":       avg.Efficiency,
		"secs":      avg.AvgSeconds,
		"fgPct":     avg.FieldGoal,
		"twoPct":    avg.TwoPoint,
		"threePct":  avg.ThreePoint,
		"ftPct":     avg.FreeThrow,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating averages for %s/%s: %w", teamID, playerKey, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var dob pgtype.Date
	var nationality, pos, photoURL sql.NullString
	var shirtNumber, avgGames, avgSecs sql.NullInt32
	var avgPts, avgReb, avgAst, avgStl, avgBlk, avgEff sql.NullFloat64
	var fgPct, twoPct, threePct, ftPct sql.NullFloat64
	var avgUpdated pgtype.Timestamptz
	err := row.Scan(
		&result.TeamID,
		&result.Key,
		&result.FirstName,
		&result.LastName,
		&dob,
		&nationality,
		&result.Height,
		&result.Weight,
		&shirtNumber,
		&pos,
		&photoURL,
		&avgGames,
		&avgPts,
		&avgReb,
		&avgAst,
		&avgStl,
		&avgBlk,
		&avgEff,
		&avgSecs,
		&fgPct,
		&twoPct,
		&threePct,
		&ftPct,
		&avgUpdated)

	if err != nil {
		return nil, err
	}

	result.BirthDate = dob.Time
	result.Nationality = valueOrEmpty(nationality)
	result.ShirtNumber = int(shirtNumber.Int32)
	result.Position = model.ParsePosition(valueOrEmpty(pos))
	result.PhotoURL = valueOrEmpty(photoURL)

	// avg_games is the marker for a cached averages block.
	if avgGames.Valid {
		result.Averages = &model.SeasonAverages{
			GamesPlayed: int(avgGames.Int32),
			Points:      avgPts.Float64,
			Rebounds:    avgReb.Float64,
			Assists:     avgAst.Float64,
			Steals:      avgStl.Float64,
			Blocks:      avgBlk.Float64,
			Efficiency:  avgEff.Float64,
			AvgSeconds:  int(avgSecs.Int32),
			FieldGoal:   fgPct.Float64,
			TwoPoint:    twoPct.Float64,
			ThreePoint:  threePct.Float64,
			FreeThrow:   ftPct.Float64,
			Updated:     avgUpdated.Time,
		}
	}

	return &result, nil
}

func (db *postgresDB) ListGames(ctx context.Context) ([]model.Game, error) {
	const query = `SELECT id, home_team, away_team, division, points_home, points_away, winner, loser
					FROM games ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}

	results := make([]model.Game, 0, 64)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	const query = `SELECT id, home_team, away_team, division, points_home, points_away, winner, loser
					FROM games WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning game %s: %w", id, err)
	}
	return g, nil
}

func (db *postgresDB) SaveGame(ctx context.Context, g *model.Game) error {
	if g == nil {
		return errors.New("SaveGame - game is nil")
	}
	const query = `INSERT INTO games (
			id, home_team, away_team, division, points_home, points_away, winner, loser
		) VALUES (
			@id, @homeTeam, @awayTeam, @division, @pointsHome, @pointsAway, @winner, @loser
		)
		ON CONFLICT (id) DO UPDATE SET
			home_team=EXCLUDED.home_team,
			away_team=EXCLUDED.away_team,
			division=EXCLUDED.division,
			points_home=EXCLUDED.points_home,
			points_away=EXCLUDED.points_away,
			winner=EXCLUDED.winner,
			loser=EXCLUDED.loser`

	args := pgx.NamedArgs{
		"id":         g.ID,
		"homeTeam":   g.HomeTeam,
		"awayTeam":   g.AwayTeam,
		"division":   string(g.Division),
		"pointsHome": g.PointsHome,
		"pointsAway": g.PointsAway,
		"winner":     nullString(g.Winner),
		"loser":      nullString(g.Loser),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving game (%s): %w", g.ID, err)
	}
	return nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var result model.Game
	var division string
	var winner, loser sql.NullString
	err := row.Scan(
		&result.ID,
		&result.HomeTeam,
		&result.AwayTeam,
		&division,
		&result.PointsHome,
		&result.PointsAway,
		&winner,
		&loser)

	if err != nil {
		return nil, err
	}

	result.Division = model.ParseDivision(division)
	result.Winner = valueOrEmpty(winner)
	result.Loser = valueOrEmpty(loser)

	return &result, nil
}

func (db *postgresDB) GetBoxScore(ctx context.Context, gameID string, side model.GameSide) ([]model.BoxScoreEntry, error) {
	const query = `SELECT player_name, player_key, is_starter, is_captain, secs_played,
						two_pm, two_pa, three_pm, three_pa, ftm, fta,
						off_reb, def_reb, assists, steals, blocks, turnovers, fouls,
						plus_minus, points, efficiency
					FROM box_score_entries
					WHERE game_id=@gameID AND side=@side
					ORDER BY entry_order`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID, "side": string(side)})
	if err != nil {
		return nil, fmt.Errorf("error reading box score for game %s (%s): %w", gameID, side, err)
	}

	results := make([]model.BoxScoreEntry, 0, 12)
	for rows.Next() {
		e := model.BoxScoreEntry{GameID: gameID, Side: side}
		var playerKey sql.NullString
		err := rows.Scan(
			&e.Name,
			&playerKey,
			&e.IsStarter,
			&e.IsCaptain,
			&e.SecsPlayed,
			&e.TwoPM,
			&e.TwoPA,
			&e.ThreePM,
			&e.ThreePA,
			&e.FTM,
			&e.FTA,
			&e.OffReb,
			&e.DefReb,
			&e.Assists,
			&e.Steals,
			&e.Blocks,
			&e.Turnovers,
			&e.Fouls,
			&e.PlusMinus,
			&e.Points,
			&e.Efficiency)
		if err != nil {
			return nil, fmt.Errorf("error scanning box score entry: %w", err)
		}
		e.PlayerKey = valueOrEmpty(playerKey)
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) SaveBoxScore(ctx context.Context, gameID string, side model.GameSide, entries []model.BoxScoreEntry) error {
	const del = `DELETE FROM box_score_entries WHERE game_id=@gameID AND side=@side`

	const ins = `INSERT INTO box_score_entries (
			game_id, side, entry_order, player_name, player_key, is_starter, is_captain,
			secs_played, two_pm, two_pa, three_pm, three_pa, ftm, fta,
			off_reb, def_reb, assists, steals, blocks, turnovers, fouls,
			plus_minus, points, efficiency
		) VALUES (
			@gameID, @side, @order, @name, @playerKey, @isStarter, @isCaptain,
			@secs, @twoPM, @twoPA, @threePM, @threePA, @ftm, @fta,
			@offReb, @defReb, @assists, @steals, @blocks, @turnovers, @fouls,
			@plusMinus, @points, @efficiency
		)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, del, pgx.NamedArgs{"gameID": gameID, "side": string(side)}); err != nil {
		return fmt.Errorf("error clearing box score for game %s (%s): %w", gameID, side, err)
	}

	for i, e := range entries {
		args := pgx.NamedArgs{
			"gameID":     gameID,
			"side":       string(side),
			"order":      i,
			"name":       e.Name,
			"playerKey":  nullString(e.PlayerKey),
			"isStarter":  e.IsStarter,
			"isCaptain":  e.IsCaptain,
			"secs":       e.SecsPlayed,
			"twoPM":      e.TwoPM,
			"twoPA":      e.TwoPA,
			"threePM":    e.ThreePM,
			"threePA":    e.ThreePA,
			"ftm":        e.FTM,
			"fta":        e.FTA,
			"offReb":     e.OffReb,
			"defReb":     e.DefReb,
			"assists":    e.Assists,
			"steals":     e.Steals,
			"blocks":     e.Blocks,
			"turnovers":  e.Turnovers,
			"fouls":      e.Fouls,
			"plusMinus":  e.PlusMinus,
			"points":     e.Points,
			"efficiency": e.Efficiency,
		}
		if _, err := tx.Exec(ctx, ins, args); err != nil {
			return fmt.Errorf("error inserting box score entry for %s: %w", e.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting box score transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) ListScheduledGames(ctx context.Context) ([]model.ScheduledGame, error) {
	const query = `SELECT id, home_team, away_team, division, arena, tipoff
					FROM scheduled_games ORDER BY tipoff`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing scheduled games: %w", err)
	}

	results := make([]model.ScheduledGame, 0, 32)
	for rows.Next() {
		var g model.ScheduledGame
		var division string
		var arena sql.NullString
		var tipoff pgtype.Timestamptz
		err := rows.Scan(&g.ID, &g.HomeTeam, &g.AwayTeam, &division, &arena, &tipoff)
		if err != nil {
			return nil, fmt.Errorf("error scanning scheduled game: %w", err)
		}
		g.Division = model.ParseDivision(division)
		g.Arena = valueOrEmpty(arena)
		g.Tipoff = tipoff.Time
		results = append(results, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) SaveScheduledGame(ctx context.Context, g *model.ScheduledGame) error {
	if g == nil {
		return errors.New("SaveScheduledGame - game is nil")
	}
	const query = `INSERT INTO scheduled_games (home_team, away_team, division, arena, tipoff)
					VALUES (@homeTeam, @awayTeam, @division, @arena, @tipoff)
					RETURNING id`

	args := pgx.NamedArgs{
		"homeTeam": g.HomeTeam,
		"awayTeam": g.AwayTeam,
		"division": string(g.Division),
		"arena":    nullString(g.Arena),
		"tipoff": pgtype.Timestamptz{
			Time:             g.Tipoff,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&g.ID); err != nil {
		return fmt.Errorf("error saving scheduled game: %w", err)
	}
	return nil
}

func (db *postgresDB) ListNews(ctx context.Context) ([]model.NewsItem, error) {
	const query = `SELECT id, title, content, image_url, published
					FROM news ORDER BY published DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing news: %w", err)
	}

	results := make([]model.NewsItem, 0, 16)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetNews(ctx context.Context, id int32) (*model.NewsItem, error) {
	const query = `SELECT id, title, content, image_url, published FROM news WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	n, err := scanNews(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("error scanning news item %d: %w", id, err)
	}
	return n, nil
}

func (db *postgresDB) SaveNews(ctx context.Context, n *model.NewsItem) error {
	if n == nil {
		return errors.New("SaveNews - news item is nil")
	}
	const query = `INSERT INTO news (title, content, image_url, published)
					VALUES (@title, @content, @imageURL, @published)
					RETURNING id`

	published := n.Published
	if published.IsZero() {
		published = db.clock.Now().UTC()
	}
	args := pgx.NamedArgs{
		"title":    n.Title,
		"content":  n.Content,
		"imageURL": nullString(n.ImageURL),
		"published": pgtype.Timestamptz{
			Time:             published,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&n.ID); err != nil {
		return fmt.Errorf("error saving news item: %w", err)
	}
	n.Published = published
	return nil
}

func scanNews(row pgx.Row) (*model.NewsItem, error) {
	var result model.NewsItem
	var imageURL sql.NullString
	var published pgtype.Timestamptz
	err := row.Scan(&result.ID, &result.Title, &result.Content, &imageURL, &published)
	if err != nil {
		return nil, err
	}
	result.ImageURL = valueOrEmpty(imageURL)
	result.Published = published.Time
	return &result, nil
}

func nullString(v string) sql.NullString {
	return sql.NullString{
		String: v,
		Valid:  v != "",
	}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
