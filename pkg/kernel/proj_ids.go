package kernel

type ProcessID string

func NewProcessID(id string) ProcessID { return ProcessID(id) }
func (p ProcessID) String() string     { return string(p) }
func (p ProcessID) IsEmpty() bool      { return string(p) == "" }

type DetailsID string

func NewDetailsID(id string) DetailsID { return DetailsID(id) }
func (d DetailsID) String() string     { return string(d) }
func (d DetailsID) IsEmpty() bool      { return string(d) == "" }

type InteractionID string

func NewInteractionID(id string) InteractionID { return InteractionID(id) }
func (i InteractionID) String() string         { return string(i) }
func (i InteractionID) IsEmpty() bool          { return string(i) == "" }

type DocumentID string

func NewDocumentID(id string) DocumentID { return DocumentID(id) }
func (d DocumentID) String() string      { return string(d) }
func (d DocumentID) IsEmpty() bool       { return string(d) == "" }
