// Package tools registers the car catalog operations as MCP tools. The
// registration table is built once at startup; each entry pairs a tool
// schema with the handler that runs it.
package tools

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"

	"github.com/cardb/mcp-server/car"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tool is one registry entry: the LLM-facing schema plus its handler.
type Tool struct {
	Definition mcp.Tool
	Handler    server.ToolHandlerFunc
}

// All returns the full tool registry.
func All() []Tool {
	return []Tool{
		searchCars(),
		selectCar(),
		getAvailableParameters(),
		getModelsByBrand(),
		recommendSearchParameters(),
	}
}

// Register adds every tool in the registry to the MCP server.
func Register(srv *server.MCPServer) {
	for _, t := range All() {
		srv.AddTool(t.Definition, t.Handler)
	}
}

func searchCars() Tool {
	def := mcp.NewTool("search_cars",
		mcp.WithDescription("Search car listings matching the given criteria (year, color, mileage, price, car type, brand). Each result includes id, brand, model, year, color, mileage, price and car type."),
		mcp.WithNumber("min_year", mcp.Description("Minimum model year (e.g. 2018)")),
		mcp.WithNumber("max_year", mcp.Description("Maximum model year (e.g. 2022)")),
		mcp.WithString("color", mcp.Description("Exterior color (e.g. white, black, red)")),
		mcp.WithNumber("max_mileage", mcp.Description("Maximum mileage in kilometers")),
		mcp.WithNumber("min_price", mcp.Description("Minimum price")),
		mcp.WithNumber("max_price", mcp.Description("Maximum price")),
		mcp.WithString("car_type", mcp.Description("Car type (e.g. compact, small, mid-size, large, sports-car)")),
		mcp.WithString("brand", mcp.Description("Brand name (e.g. Hyundai, Kia, BMW)")),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		criteria := car.SearchCriteria{
			MinYear:    cast.ToInt(args["min_year"]),
			MaxYear:    cast.ToInt(args["max_year"]),
			Color:      cast.ToString(args["color"]),
			MaxMileage: cast.ToInt(args["max_mileage"]),
			MinPrice:   cast.ToInt(args["min_price"]),
			MaxPrice:   cast.ToInt(args["max_price"]),
			CarType:    cast.ToString(args["car_type"]),
			Brand:      cast.ToString(args["brand"]),
		}
		cars, err := car.Search(criteria)
		if err != nil {
			return nil, err
		}
		return jsonResult(cars)
	}
	return Tool{Definition: def, Handler: handler}
}

func selectCar() Tool {
	def := mcp.NewTool("select_car",
		mcp.WithDescription("Look up the full details of one car listing by its id: brand, model, year, color, mileage, price and car type."),
		mcp.WithNumber("car_id", mcp.Required(), mcp.Description("Id of the car listing")),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := cast.ToInt(req.GetArguments()["car_id"])
		selection, err := car.SelectByID(id)
		if err != nil {
			var notFound *car.NotFoundError
			if errors.As(err, &notFound) {
				return mcp.NewToolResultError(notFound.Error()), nil
			}
			return nil, err
		}
		return jsonResult(selection)
	}
	return Tool{Definition: def, Handler: handler}
}

func getAvailableParameters() Tool {
	def := mcp.NewTool("get_available_parameters",
		mcp.WithDescription("List every value usable as a search filter: the brands, colors and car types in the catalog, plus the year, price and mileage ranges."),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params, err := car.AvailableParameters()
		if err != nil {
			return nil, err
		}
		return jsonResult(params)
	}
	return Tool{Definition: def, Handler: handler}
}

func getModelsByBrand() Tool {
	def := mcp.NewTool("get_models_by_brand",
		mcp.WithDescription("List the model names offered by one brand, in alphabetical order."),
		mcp.WithString("brand", mcp.Required(), mcp.Description("Brand name")),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		brand := cast.ToString(req.GetArguments()["brand"])
		models, err := car.ModelsByBrand(brand)
		if err != nil {
			return nil, err
		}
		return jsonResult(models)
	}
	return Tool{Definition: def, Handler: handler}
}

func recommendSearchParameters() Tool {
	def := mcp.NewTool("recommend_search_parameters",
		mcp.WithDescription("Recommend search filters for a preference keyword such as 'economical', 'premium', 'practical' or 'sporty'."),
		mcp.WithString("preference", mcp.Required(), mcp.Description("Preference keyword")),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		preference := cast.ToString(req.GetArguments()["preference"])
		return jsonResult(car.Recommend(preference))
	}
	return Tool{Definition: def, Handler: handler}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
