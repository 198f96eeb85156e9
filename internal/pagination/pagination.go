package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Request — параметры страницы из запроса. Page нумеруется с 1.
type Request struct {
	Page     int
	PageSize int
}

// Normalize подставляет дефолты при некорректных значениях.
func (r Request) Normalize() Request {
	if r.PageSize <= 0 {
		r.PageSize = DefaultPageSize
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
	if r.Page <= 0 {
		r.Page = 1
	}
	return r
}

// Limit и Offset — для LIMIT/OFFSET в запросе к БД.
func (r Request) Limit() int {
	return r.Normalize().PageSize
}

func (r Request) Offset() int {
	n := r.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items    []T // элементы на текущей странице
	Page     int // номер страницы (с 1)
	PageSize int // количество элементов на странице
	HasNext  bool
	HasPrev  bool
	Total    int64 // общее количество элементов
}

// NewPage собирает страницу из уже выбранных БД элементов и общего количества.
func NewPage[T any](items []T, req Request, total int64) Page[T] {
	req = req.Normalize()
	return Page[T]{
		Items:    items,
		Page:     req.Page,
		PageSize: req.PageSize,
		HasPrev:  req.Page > 1,
		HasNext:  int64(req.Offset()+len(items)) < total,
		Total:    total,
	}
}

// Paginate режет срез items в памяти и возвращает нужную страницу.
func Paginate[T any](items []T, req Request) Page[T] {
	req = req.Normalize()
	total := len(items)

	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	return NewPage(items[start:end], req, int64(total))
}

// Map переводит элементы страницы в другой тип, сохраняя метаданные.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, fn(it))
	}
	return Page[U]{
		Items:    out,
		Page:     p.Page,
		PageSize: p.PageSize,
		HasNext:  p.HasNext,
		HasPrev:  p.HasPrev,
		Total:    p.Total,
	}
}
