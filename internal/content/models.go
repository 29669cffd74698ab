package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
)

// Typed request bodies for the create path. Stored documents stay loosely
// typed; these records validate required fields before anything is written.

// CreateRequest is implemented by every typed create body.
type CreateRequest interface {
	Validate() error
	Fields() bson.M
}

type Service struct {
	Title string   `json:"title"`
	Icon  string   `json:"icon"`
	Desc  string   `json:"desc"`
	List  []string `json:"list"`
	Image string   `json:"image"`
}

func (r *Service) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Desc, validation.Required),
	)
}

func (r *Service) Fields() bson.M {
	return bson.M{"title": r.Title, "icon": r.Icon, "desc": r.Desc, "list": orEmpty(r.List), "image": r.Image}
}

type Project struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

func (r *Project) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Category, validation.Required),
	)
}

func (r *Project) Fields() bson.M {
	return bson.M{"title": r.Title, "category": r.Category, "image": r.Image, "tags": orEmpty(r.Tags), "description": r.Description}
}

type PricingPlan struct {
	Name        string   `json:"name"`
	Badge       string   `json:"badge"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	PricePeriod string   `json:"price_period"`
	Features    []string `json:"features"`
}

func (r *PricingPlan) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Price, validation.Required),
	)
}

func (r *PricingPlan) Fields() bson.M {
	period := r.PricePeriod
	if period == "" {
		period = "/month"
	}
	return bson.M{"name": r.Name, "badge": r.Badge, "description": r.Description, "price": r.Price, "price_period": period, "features": orEmpty(r.Features)}
}

type Blog struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Date        string `json:"date"`
	ReadTime    string `json:"read_time"`
	Content     string `json:"content"`
}

func (r *Blog) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
	)
}

func (r *Blog) Fields() bson.M {
	return bson.M{"title": r.Title, "category": r.Category, "description": r.Description, "image": r.Image, "date": r.Date, "read_time": r.ReadTime, "content": r.Content}
}

type Testimonial struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Desc string `json:"desc"`
	Img  string `json:"img"`
}

func (r *Testimonial) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Role, validation.Required),
		validation.Field(&r.Desc, validation.Required),
	)
}

func (r *Testimonial) Fields() bson.M {
	return bson.M{"name": r.Name, "role": r.Role, "desc": r.Desc, "img": r.Img}
}

type Client struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

func (r *Client) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
	)
}

func (r *Client) Fields() bson.M {
	return bson.M{"name": r.Name, "logo": r.Logo}
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Open     bool   `json:"open"`
}

func (r *FAQ) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Question, validation.Required),
		validation.Field(&r.Answer, validation.Required),
	)
}

func (r *FAQ) Fields() bson.M {
	return bson.M{"question": r.Question, "answer": r.Answer, "open": r.Open}
}

// Question is a visitor-submitted question awaiting an admin answer.
type Question struct {
	Question string `json:"question"`
	Email    string `json:"email"`
}

func (r *Question) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Question, validation.Required),
		validation.Field(&r.Email, is.Email),
	)
}

func (r *Question) Fields() bson.M {
	return bson.M{"question": r.Question, "email": r.Email, "answered": false}
}

type ContactMessage struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

func (r *ContactMessage) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Message, validation.Required),
	)
}

func (r *ContactMessage) Fields() bson.M {
	return bson.M{"full_name": r.FullName, "email": r.Email, "phone": r.Phone, "message": r.Message}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
