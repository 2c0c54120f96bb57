package football

// Namespace is the base IRI prefix for all football ontology terms.
const Namespace = "http://example.org/football/"

// EntityNamespace is the base IRI under which entity instance IRIs are minted.
// Instance IRIs follow the pattern {EntityNamespace}{entityType}/{primaryKey}.
const EntityNamespace = "http://example.org/football/"

// StatsNamespace holds aggregated statistics terms.
const StatsNamespace = "http://example.org/football/stats#"

// Class IRIs define the types of entities in the football ontology.
const (
	// ClassCountry represents a country.
	ClassCountry = Namespace + "Country"

	// ClassVenue represents a stadium or ground.
	ClassVenue = Namespace + "Venue"

	// ClassLeague represents a competition.
	ClassLeague = Namespace + "League"

	// ClassTeam represents a club or national team.
	ClassTeam = Namespace + "Team"

	// ClassSeason represents one season of a league.
	ClassSeason = Namespace + "Season"

	// ClassFixtureStatus represents the lifecycle state of a fixture.
	ClassFixtureStatus = Namespace + "FixtureStatus"

	// ClassFixture represents a scheduled or played match.
	ClassFixture = Namespace + "Fixture"

	// ClassFixtureScore represents a score snapshot for a fixture period.
	ClassFixtureScore = Namespace + "FixtureScore"

	// ClassFixtureEvent represents an in-match event (goal, card, substitution).
	ClassFixtureEvent = Namespace + "FixtureEvent"

	// ClassPlayer represents a player.
	ClassPlayer = Namespace + "Player"

	// ClassCoach represents a coach.
	ClassCoach = Namespace + "Coach"

	// ClassBookmaker represents an odds provider.
	ClassBookmaker = Namespace + "Bookmaker"

	// ClassOddsType represents a betting market type.
	ClassOddsType = Namespace + "OddsType"

	// ClassOddsValue represents one priced outcome within a market.
	ClassOddsValue = Namespace + "OddsValue"

	// ClassOdds represents a bookmaker's odds for a fixture market.
	ClassOdds = Namespace + "Odds"

	// ClassStanding represents a league-table row for a team in a season.
	ClassStanding = Namespace + "Standing"

	// ClassPlayerTransfer represents a player moving between teams.
	ClassPlayerTransfer = Namespace + "PlayerTransfer"

	// ClassPlayerSideline represents an injury or suspension spell.
	ClassPlayerSideline = Namespace + "PlayerSideline"

	// ClassTeamStatistics represents aggregated team statistics for a season.
	ClassTeamStatistics = Namespace + "TeamStatistics"

	// ClassFixtureStatistic represents a single team statistic for a fixture.
	ClassFixtureStatistic = Namespace + "FixtureStatistic"

	// ClassFixtureLineup represents a team's lineup for a fixture.
	ClassFixtureLineup = Namespace + "FixtureLineup"

	// ClassLineupPlayer represents one player's slot in a fixture lineup.
	ClassLineupPlayer = Namespace + "LineupPlayer"

	// ClassFixtureCoach represents a coach's appearance at a fixture.
	ClassFixtureCoach = Namespace + "FixtureCoach"

	// ClassFixturePlayerStatistic represents one player's statistics for a
	// fixture.
	ClassFixturePlayerStatistic = Namespace + "FixturePlayerStatistic"

	// ClassPlayerAggregatedStatistic represents a player's aggregated
	// statistics across fixtures.
	ClassPlayerAggregatedStatistic = Namespace + "PlayerAggregatedStatistic"

	// ClassPlayerInjury represents an injury record for a player.
	ClassPlayerInjury = Namespace + "PlayerInjury"

	// ClassCoachCareer represents one stop in a coach's career.
	ClassCoachCareer = Namespace + "CoachCareer"

	// ClassOddsHistory represents a recorded movement of an odds value.
	ClassOddsHistory = Namespace + "OddsHistory"

	// ClassPlayerTeamHistory represents a player's team for a season.
	ClassPlayerTeamHistory = Namespace + "PlayerTeamHistory"

	// ClassTeamSquadMember represents a player's membership in the current
	// squad.
	ClassTeamSquadMember = Namespace + "TeamSquadMember"
)

// External vocabulary base IRIs reused by the football mappings.
const (
	// SchemaNamespace is the schema.org vocabulary.
	SchemaNamespace = "http://schema.org/"

	// DCTermsNamespace is the Dublin Core terms vocabulary.
	DCTermsNamespace = "http://purl.org/dc/terms/"

	// RDFNamespace is the RDF core vocabulary.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema vocabulary.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
)

// RDFType is the rdf:type predicate used for all class assertions.
const RDFType = RDFNamespace + "type"

// RDFSLabel is the rdfs:label predicate.
const RDFSLabel = RDFSNamespace + "label"
