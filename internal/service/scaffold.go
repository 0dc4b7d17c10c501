package service

import (
	"fmt"
	"strings"

	"origo-server/internal/models"
)

// scaffoldFileTree builds a deterministic file tree from the request alone.
// Used both by the static synthesizer and as the fallback when the model
// response cannot be parsed.
func scaffoldFileTree(req *models.GenerationRequest, mode models.GenerationMode) *models.FileTreeResult {
	switch mode {
	case models.ModeComponent:
		return scaffoldComponent(req)
	case models.ModePreview:
		return scaffoldPreview(req)
	default:
		return scaffoldProject(req)
	}
}

func scaffoldProject(req *models.GenerationRequest) *models.FileTreeResult {
	features := req.FeatureList()

	var featureItems strings.Builder
	var featureBullets strings.Builder
	for _, f := range features {
		fmt.Fprintf(&featureItems, "        <li>%s</li>\n", f)
		fmt.Fprintf(&featureBullets, "- %s\n", f)
	}

	indexHTML := fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/index.js"></script>
  </body>
</html>
`, req.Idea)

	appJSX := fmt.Sprintf(`import React from "react";

export default function App() {
  return (
    <main>
      <h1>%s</h1>
      <p>Built for %s.</p>
      <ul>
%s      </ul>
    </main>
  );
}
`, req.Idea, req.TargetUsers, featureItems.String())

	indexJS := `import React from "react";
import { createRoot } from "react-dom/client";
import App from "./App.jsx";

createRoot(document.getElementById("root")).render(<App />);
`

	mainPy := fmt.Sprintf(`from fastapi import FastAPI

from app.routes.api import router

app = FastAPI(title=%q)
app.include_router(router, prefix="/api")


@app.get("/health")
def health():
    return {"status": "ok"}
`, req.Idea)

	apiPy := `from fastapi import APIRouter

router = APIRouter()


@router.get("/items")
def list_items():
    return []
`

	readme := fmt.Sprintf(`# %s

## Target users

%s

## Features

%s
## Stack

%s

## Running

Frontend lives under frontend/, backend under backend/. Install the
dependencies for each part and start them separately.
`, req.Idea, req.TargetUsers, featureBullets.String(), req.Stack)

	return &models.FileTreeResult{
		FrontendFiles: map[string]string{
			"public/index.html": indexHTML,
			"src/App.jsx":       appJSX,
			"src/index.js":      indexJS,
		},
		BackendFiles: map[string]string{
			"app/main.py":       mainPy,
			"app/routes/api.py": apiPy,
		},
		Readme: readme,
	}
}

func scaffoldComponent(req *models.GenerationRequest) *models.FileTreeResult {
	component := fmt.Sprintf(`import React from "react";

export default function AutoComponent() {
  return (
    <section>
      <h2>%s</h2>
      <p>Placeholder component, replace the body with real markup.</p>
    </section>
  );
}
`, req.Idea)

	return &models.FileTreeResult{
		FrontendFiles: map[string]string{
			"src/components/AutoComponent.jsx": component,
		},
		BackendFiles: map[string]string{},
		Readme:       fmt.Sprintf("AutoComponent renders %q. Import it from src/components/AutoComponent.jsx.\n", req.Idea),
	}
}

func scaffoldPreview(req *models.GenerationRequest) *models.FileTreeResult {
	var featureItems strings.Builder
	for _, f := range req.FeatureList() {
		fmt.Fprintf(&featureItems, "    <li>%s</li>\n", f)
	}

	previewHTML := fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <title>%s preview</title>
  </head>
  <body>
    <h1>%s</h1>
    <p>For %s.</p>
    <ul>
%s    </ul>
  </body>
</html>
`, req.Idea, req.Idea, req.TargetUsers, featureItems.String())

	return &models.FileTreeResult{
		FrontendFiles: map[string]string{
			"preview.html": previewHTML,
		},
		BackendFiles: map[string]string{},
		Readme:       "Open preview.html in a browser for a static look at the product.\n",
	}
}
