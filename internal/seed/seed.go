package seed

import (
	"context"
	"fmt"

	"interviewdock/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Name        string
	Slug        string
	Description string
	Order       int
}

type technologySeed struct {
	Name         string
	Slug         string
	Description  string
	Icon         string
	Order        int
	CategorySlug string
}

type questionSeed struct {
	Title          string
	Answer         string
	CodeSnippet    string
	CodeLanguage   string
	Difficulty     domain.Difficulty
	TechnologySlug string
	Tags           []string
}

// Apply inserts demo catalog data for manual testing. It is idempotent
// via ON CONFLICT on the slug columns.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{Name: "Frontend", Slug: "frontend", Description: "Client-side development technologies", Order: 1},
		{Name: "Backend", Slug: "backend", Description: "Server-side development technologies", Order: 2},
	}

	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		id, err := upsertCategory(ctx, pool, c)
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = id
	}

	technologies := []technologySeed{
		{Name: "React", Slug: "react", Description: "A JavaScript library for building user interfaces", Icon: "react", Order: 1, CategorySlug: "frontend"},
		{Name: "Vue.js", Slug: "vuejs", Description: "Progressive JavaScript framework", Icon: "vuejs", Order: 2, CategorySlug: "frontend"},
		{Name: "JavaScript", Slug: "javascript", Description: "Core JavaScript language", Icon: "javascript", Order: 3, CategorySlug: "frontend"},
		{Name: "Node.js", Slug: "nodejs", Description: "JavaScript runtime built on Chrome's V8 engine", Icon: "nodejs", Order: 1, CategorySlug: "backend"},
		{Name: "PostgreSQL", Slug: "postgresql", Description: "Powerful open-source relational database", Icon: "postgresql", Order: 2, CategorySlug: "backend"},
		{Name: "Spring Boot", Slug: "spring-boot", Description: "Java framework for building applications", Icon: "spring", Order: 3, CategorySlug: "backend"},
	}

	technologyIDs := make(map[string]string, len(technologies))
	for _, t := range technologies {
		id, err := upsertTechnology(ctx, pool, t, categoryIDs[t.CategorySlug])
		if err != nil {
			return fmt.Errorf("upsert technology %s: %w", t.Slug, err)
		}
		technologyIDs[t.Slug] = id
	}

	questions := []questionSeed{
		{
			Title:          "What is the Virtual DOM and how does React use it?",
			Answer:         "The Virtual DOM is a lightweight in-memory copy of the actual DOM. On every state change React builds a new virtual tree, diffs it against the previous one and applies only the minimum set of real DOM updates.",
			CodeSnippet:    "function Counter() {\n  const [count, setCount] = useState(0);\n  return <button onClick={() => setCount(count + 1)}>{count}</button>;\n}",
			CodeLanguage:   "javascript",
			Difficulty:     domain.DifficultyMedium,
			TechnologySlug: "react",
			Tags:           []string{"Performance"},
		},
		{
			Title:          "Explain the difference between useMemo and useCallback",
			Answer:         "useMemo memoizes the result of a computation and returns the cached value; useCallback memoizes the function itself so its reference stays stable between renders.",
			CodeSnippet:    "const total = useMemo(() => items.reduce((s, i) => s + i.price, 0), [items]);\nconst onClick = useCallback((id) => select(id), [select]);",
			CodeLanguage:   "javascript",
			Difficulty:     domain.DifficultyMedium,
			TechnologySlug: "react",
			Tags:           []string{"Hooks", "Performance"},
		},
		{
			Title:          "What are React hooks rules?",
			Answer:         "Hooks may only be called at the top level of a function component or another hook, never inside loops, conditions or nested functions, so the call order stays identical between renders.",
			Difficulty:     domain.DifficultyEasy,
			TechnologySlug: "react",
			Tags:           []string{"Hooks"},
		},
		{
			Title:          "How does the JavaScript event loop work?",
			Answer:         "The event loop drains the call stack, then processes all queued microtasks (promise callbacks), then takes the next macrotask (timers, I/O) and repeats. Rendering happens between macrotasks.",
			Difficulty:     domain.DifficultyHard,
			TechnologySlug: "javascript",
			Tags:           []string{"Event Loop", "Async"},
		},
		{
			Title:          "What is the difference between var, let and const?",
			Answer:         "var is function-scoped and hoisted with undefined; let and const are block-scoped and live in the temporal dead zone until declared. const additionally forbids reassignment.",
			Difficulty:     domain.DifficultyEasy,
			TechnologySlug: "javascript",
			Tags:           []string{"ES6"},
		},
		{
			Title:          "How do streams work in Node.js?",
			Answer:         "Streams process data in chunks instead of buffering whole payloads. Readable, Writable, Duplex and Transform streams can be piped together with automatic backpressure handling.",
			CodeSnippet:    "fs.createReadStream('in.log')\n  .pipe(zlib.createGzip())\n  .pipe(fs.createWriteStream('in.log.gz'));",
			CodeLanguage:   "javascript",
			Difficulty:     domain.DifficultyMedium,
			TechnologySlug: "nodejs",
			Tags:           []string{"Async"},
		},
		{
			Title:          "What is an index and when should you add one?",
			Answer:         "An index is an auxiliary structure (usually a B-tree) that lets the planner find rows without scanning the whole table. Add one for selective predicates that appear in WHERE, JOIN or ORDER BY clauses; every index slows writes.",
			Difficulty:     domain.DifficultyMedium,
			TechnologySlug: "postgresql",
			Tags:           []string{"Database", "SQL", "Performance"},
		},
		{
			Title:          "Explain transaction isolation levels in PostgreSQL",
			Answer:         "PostgreSQL implements Read Committed (default), Repeatable Read and Serializable on top of MVCC. Higher levels trade throughput for protection against non-repeatable reads, phantom reads and serialization anomalies.",
			Difficulty:     domain.DifficultyHard,
			TechnologySlug: "postgresql",
			Tags:           []string{"Database", "SQL"},
		},
	}

	for _, q := range questions {
		if err := insertQuestion(ctx, pool, q, technologyIDs[q.TechnologySlug]); err != nil {
			return fmt.Errorf("insert question %q: %w", q.Title, err)
		}
	}

	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (string, error) {
	const q = `
INSERT INTO categories (name, slug, description, sort_order)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    sort_order = EXCLUDED.sort_order
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, c.Name, c.Slug, c.Description, c.Order).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertTechnology(ctx context.Context, pool *pgxpool.Pool, t technologySeed, categoryID string) (string, error) {
	const q = `
INSERT INTO technologies (name, slug, description, icon, sort_order, category_id)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    icon = EXCLUDED.icon,
    sort_order = EXCLUDED.sort_order,
    category_id = EXCLUDED.category_id
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, t.Name, t.Slug, t.Description, t.Icon, t.Order, categoryID).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func insertQuestion(ctx context.Context, pool *pgxpool.Pool, q questionSeed, technologyID string) error {
	// Question titles carry no uniqueness constraint, so re-running the
	// seeder skips questions whose title already exists under the same
	// technology instead of duplicating them.
	const existsQ = `SELECT EXISTS (SELECT 1 FROM questions WHERE title = $1 AND technology_id = $2)`
	var exists bool
	if err := pool.QueryRow(ctx, existsQ, q.Title, technologyID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	const insertQ = `
INSERT INTO questions (title, answer, code_snippet, code_language, difficulty, technology_id)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
RETURNING id::text
`
	var questionID string
	if err := pool.QueryRow(ctx, insertQ, q.Title, q.Answer, q.CodeSnippet, q.CodeLanguage, string(q.Difficulty), technologyID).Scan(&questionID); err != nil {
		return err
	}

	for _, name := range q.Tags {
		if err := attachTag(ctx, pool, questionID, name); err != nil {
			return err
		}
	}
	return nil
}

func attachTag(ctx context.Context, pool *pgxpool.Pool, questionID, name string) error {
	const tagQ = `
INSERT INTO tags (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = tags.name
RETURNING id::text
`
	var tagID string
	if err := pool.QueryRow(ctx, tagQ, name, domain.Slugify(name)).Scan(&tagID); err != nil {
		return err
	}

	const linkQ = `
INSERT INTO question_tags (question_id, tag_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`
	_, err := pool.Exec(ctx, linkQ, questionID, tagID)
	return err
}
